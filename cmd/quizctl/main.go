package main

import "os"

func main() {
	if err := newRootCmd(defaultServiceFactory).Execute(); err != nil {
		os.Exit(1)
	}
}
