package main

import "os"

func main() {
	if err := newRootCmd(dialServer).Execute(); err != nil {
		os.Exit(1)
	}
}
