package main

import "golang-iperf3d/cmd"

func main() {
	cmd.Execute()
}
