package main

import (
	"myplanner/connection"
)

func main() {
	connection.StartServer()
}
