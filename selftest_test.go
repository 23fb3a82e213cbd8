package main

import "testing"

func TestSelfTestShouldPass(t *testing.T) {
	if err := runSelfTest(); err != nil {
		t.Errorf("Expected no error, but got %v", err)
	}
}
