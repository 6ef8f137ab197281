// Command corec drives the compiler front end (tokenizer, parser driver,
// source/include manager) over real files on disk, printing every
// diagnostic it collects. It exists to exercise components A-H end to
// end; everything past the token stream (the grammar, semantic analysis,
// codegen) is out of scope, matching spec.md's own Non-goals.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zaxc/corec/operator"
	"github.com/zaxc/corec/parserdriver"
	"github.com/zaxc/corec/reporter"
	"github.com/zaxc/corec/source"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("corec: ")

	parentSearchLimit := flag.Int("parent-search-limit", 0, "how many parent directories LocateFile walks before giving up (0 = default)")
	quiet := flag.Bool("quiet", false, "suppress informational and warning diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] source-file [source-file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	host := &source.OSHost{ParentSearchLimit: *parentSearchLimit}
	errCount := 0

	d := parserdriver.New(host, operator.New(), func(diagnostic reporter.Diagnostic) {
		if *quiet && diagnostic.Severity < reporter.SeverityError {
			return
		}
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", diagnostic.Location, diagnostic.Severity, diagnostic.Message)
		if diagnostic.Severity >= reporter.SeverityError {
			errCount++
		}
	})

	for _, path := range flag.Args() {
		d.AddCommandLineSource(path)
	}

	log.Printf("compiling %d source(s)", flag.NArg())
	if err := d.Run(); err != nil {
		log.Printf("finished with %d error(s)", errCount)
		os.Exit(1)
	}
	log.Printf("processed %d file(s), no errors", len(d.Processed()))
}
