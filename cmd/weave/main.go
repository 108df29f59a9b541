// Command weave compiles an assembly of families and rules into a
// catalog and answers combinations and options queries against it.
//
// Usage:
//
//	weave build --assembly catalog.yaml
//	weave combinations --assembly catalog.yaml [--select a,b] [--exclude c]
//	weave options --assembly catalog.yaml [--select a,b] [--exclude c]
//	weave configure --assembly catalog.yaml
//
// Commands accept an assembly file rather than a database connection —
// the engine is a pure in-memory computation with no persistence layer
// of its own.
package main

func main() {
	Execute()
}
