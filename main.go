package main

import (
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/cmd"
)

func main() {
	cmd.Execute()
}
