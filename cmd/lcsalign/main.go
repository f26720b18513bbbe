// cmd/lcsalign/main.go
package main

import (
	"lcsalign/internal/app"
	"lcsalign/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
