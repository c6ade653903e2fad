package main

import (
	"fmt"

	"fritter/engine/actors"
	"fritter/engine/library"
	"fritter/messaging/conductor"
	"fritter/state/identity"
	"github.com/spf13/viper"
)

func main() {
	// Various aspects of this application require global and local settings. To keep things
	// clean and tidy we put these settings in a Viper configuration.
	conf := viper.New()

	// Now we initialise this configuration with basic settings that are required on startup.
	actors.InitConfig(conf)
	// make the config accessible globally
	actors.SetConfig(conf)
	fmt.Println("CURRENT CONFIG")
	for k, v := range actors.MakeOrGetConfig().AllSettings() {
		fmt.Printf("\nKey: %s; Value: %v\n", k, v)
	}
	terminateChan := make(chan struct{})
	actors.SetTerminateChan(terminateChan)

	// Touching the identity mind starts it and seeds the configured admin accounts.
	identity.GetMap()
	conductor.Start()

	interrupt := make(chan struct{})
	go cliListener(interrupt)
	<-interrupt
	close(terminateChan)
	actors.GetWaitGroup().Wait()
	fmt.Println(library.Bye())
}
