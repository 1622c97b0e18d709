// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Command checksum exposes the integrity layer on the command line: file
// digests, case fingerprints, and export manifest build/verify.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"casetrace/internal/integrity"
	"casetrace/internal/version"
)

func main() {
	hashCase := flag.String("case", "", "Case ID for fingerprint or manifest operations")
	caseTitle := flag.String("title", "", "Case title (with -case and -score: print case fingerprint)")
	caseScore := flag.Float64("score", 0, "Case integrity score (with -case and -title)")
	buildDir := flag.String("build-manifest", "", "Directory to write an export manifest into (requires -case and file args)")
	verifyPath := flag.String("verify-manifest", "", "Manifest file to verify (requires -dir)")
	verifyDir := flag.String("dir", ".", "Directory holding the files listed in the manifest")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	switch {
	case *caseTitle != "":
		if *hashCase == "" {
			fatal("case fingerprint requires -case")
		}
		fmt.Println(integrity.CaseFingerprint(*hashCase, *caseTitle, *caseScore))

	case *buildDir != "":
		if *hashCase == "" || flag.NArg() == 0 {
			fatal("building a manifest requires -case and at least one file argument")
		}
		manifest, err := integrity.BuildManifest(*hashCase, flag.Args(), nil)
		if err != nil {
			fatal("%v", err)
		}
		path, err := integrity.WriteManifest(*buildDir, manifest)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(path)

	case *verifyPath != "":
		manifest, err := integrity.ReadManifest(*verifyPath)
		if err != nil {
			fatal("%v", err)
		}
		mismatches, err := integrity.VerifyManifest(*verifyDir, manifest)
		if err != nil {
			fatal("%v", err)
		}
		if len(mismatches) == 0 {
			fmt.Printf("manifest OK: %d files intact\n", len(manifest.Files))
			return
		}
		for _, m := range mismatches {
			fmt.Fprintf(os.Stderr, "MISMATCH %s\n  recorded %s\n  actual   %s\n", m.Name, m.Recorded, m.Actual)
		}
		os.Exit(1)

	case flag.NArg() > 0:
		// Default mode: print one digest per file argument.
		for _, path := range flag.Args() {
			digest, err := integrity.SHA256File(path)
			if err != nil {
				fatal("%v", err)
			}
			fmt.Printf("%s  %s\n", digest, path)
		}

	default:
		fmt.Fprintln(os.Stderr, "Usage: checksum [flags] <file>...")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, "Error: "+strings.TrimSpace(msg))
	os.Exit(1)
}
