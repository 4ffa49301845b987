package main

import (
	"log"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli"

	"github.com/alt-research/cw-nft-market/market/configs"
)

const defaultConfigPath = "./market-cli.yaml"

func main() {
	app := cli.NewApp()
	app.Flags = configs.Flags
	app.Version = versioninfo.Short()
	app.Name = "market-cli"
	app.Usage = "The cosmwasm nft market client"
	app.Description = "Query and trade on the nft marketplace, collection and minter contracts"

	app.Commands = []cli.Command{
		keysCommand,
		marketCommand,
		nftCommand,
		minterCommand,
		journalCommand,
		serveCommand,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalln("Application failed.", "Message:", err)
	}
}
