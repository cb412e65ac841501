package main

import "fmt"

type os struct{}

func (os) Exit(int) {}

func main() {
	var o os
	o.Exit(1)
	fmt.Println("ok")
}
