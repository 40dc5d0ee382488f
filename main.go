package main

import "github.com/JeanKossaifi/videobrowser/cmd"

func main() {
	cmd.Execute()
}
