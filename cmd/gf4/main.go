package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("gf4")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
