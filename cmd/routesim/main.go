// SPDX-License-Identifier: MIT

// Command routesim drives the packet routing simulator from the terminal.
package main

func main() {
	Execute()
}
