package main

import (
	"github.com/namanpunn/logikxmind-uat/cmd"
)

func main() {
	cmd.Execute()
}
