// Package fuzztests holds go-fuzz targets for the scanner.
//
// Run with:
//
//	go test ./internal/fuzz -run=^$ -fuzz=FuzzScan -fuzztime=30s
package fuzztests
