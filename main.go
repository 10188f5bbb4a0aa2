package main

import "github.com/varalys/secretguard/cmd/secretguard"

func main() { secretguard.Execute() }
