package main

import (
	"github.com/shivas758/yamkar4.1-sub001/config"
	"github.com/shivas758/yamkar4.1-sub001/routes"
	"github.com/shivas758/yamkar4.1-sub001/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
