// Command fileqa 在终端中对本地文档提问。
package main

import (
	"os"

	"fileqa-go/pkg/llm"
)

func main() {
	if err := newRootCmd(llm.NewClient).Execute(); err != nil {
		os.Exit(1)
	}
}
