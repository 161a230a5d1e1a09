// black box testing of concurrent transfers
package ot_test

type test_size struct {
	scenario        string
	transfers       int
	maxLen, workers int
}

// test scenarios
// every transfer draws a fresh pair of messages of at most maxLen random
// bytes and a random choice bit, workers transfers run at once
var test_sizes = []test_size{
	{"single", 1, 32, 1},
	{"emptyBodies", 100, 0, 4},
	{"smallMessages", 1000, 16, 8},
	{"largeMessages", 100, 1 << 16, 4},
}
