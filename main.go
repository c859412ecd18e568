package main

import (
	"github.com/joho/godotenv"
	"github.com/mandereck/topicadm/cmd"
	"github.com/mandereck/topicadm/internal/utils"
)

func main() {
	godotenv.Load()
	utils.InitLogger()
	cmd.Execute()
}
