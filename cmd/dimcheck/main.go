// Command dimcheck reports dimension errors in dimgo calls.
//
// Run it standalone or through go vet:
//
//	dimcheck ./...
//	go vet -vettool=$(which dimcheck) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/hupe1980/dimgo/dimcheck"
)

func main() {
	singlechecker.Main(dimcheck.Analyzer)
}
