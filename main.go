// Command codeseq counts and lists the partitions of digit strings into codes.
package main

import "github.com/natiilollll/Code-Sequence-Validator/cmd"

func main() {
	cmd.Execute()
}
