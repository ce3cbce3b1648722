package main

import "github.com/nexodus-tech/vendor-console/internal/cmd"

func main() {
	cmd.Execute()
}
