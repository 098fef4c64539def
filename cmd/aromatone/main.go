// Command aromatone runs the AromaTone backend and its terminal tools.
package main

func main() {
	Execute()
}
