package main

import (
	"os"

	"github.com/Vishakha-Patel-66/ResumeRanking/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
