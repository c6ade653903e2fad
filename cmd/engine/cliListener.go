package main

import (
	"fmt"

	"fritter/engine/actors"
	"fritter/state/content"
	"fritter/state/identity"
	"fritter/state/recommend"
	"fritter/state/vsp"
	"github.com/eiannone/keyboard"
)

// cliListener is a cheap and nasty way to speed up development cycles. It listens for keypresses and executes commands.
func cliListener(interrupt chan struct{}) {
	fmt.Println("VIEW CURRENT STATE:\nu: user table\nc: content table\nv: pending VSP requests\nV: verified users\nr: recommendations for a username\nC: engine config\nq: to quit\nSee cliListener.go for more")
	for {
		r, k, err := keyboard.GetSingleKey()
		if err != nil {
			panic(err)
		}
		str := string(r)
		switch str {
		default:
			if k == 13 {
				fmt.Println("\n-----------------------------------")
				break
			}
			if r == 0 {
				break
			}
			fmt.Println("Key " + str + " is not bound to any test procedures. See main.cliListener for more details.")
		case "u":
			for username, u := range identity.GetMap() {
				fmt.Printf("\nUSER: %s\nVerified: %t Admin: %t\nInterests: %v\nFollowing: %v\nFollowers: %v\n", username, u.Verified, u.Admin, u.Interests, u.Following, u.Followers)
			}
		case "c":
			for _, c := range content.RecentFirst() {
				fmt.Printf("\nCONTENT: %s by %s\nFact: %t\nBody: %s\nEndorsers: %v\nDenouncers: %v\n", c.UID, c.Author, c.IsFact, c.Body, c.Endorsers, c.Denouncers)
			}
		case "v":
			pending, err := vsp.ListPending(firstAdmin())
			if err != nil {
				fmt.Println(err.Error())
				break
			}
			for _, request := range pending {
				fmt.Printf("\nREQUEST: %s\nStatus: %s\nJustification: %s\n", request.Username, request.Status, request.Justification)
			}
		case "V":
			verified, err := vsp.ListVerified(firstAdmin())
			if err != nil {
				fmt.Println(err.Error())
				break
			}
			for _, u := range verified {
				fmt.Printf("\nVERIFIED: %s\n", u.Username)
			}
		case "r":
			fmt.Println("Type a username and press enter:")
			var username string
			fmt.Scanln(&username)
			suggested, err := recommend.Recommend(username)
			if err != nil {
				fmt.Println(err.Error())
				break
			}
			for _, u := range suggested {
				fmt.Printf("\nSUGGESTED: %s\n", u.Username)
			}
		case "C":
			fmt.Println("CURRENT CONFIG")
			for k, v := range actors.MakeOrGetConfig().AllSettings() {
				fmt.Printf("\nKey: %s; Value: %v\n", k, v)
			}
		case "q":
			close(interrupt)
			return
		}
	}
}

func firstAdmin() string {
	admins := actors.MakeOrGetConfig().GetStringSlice("admins")
	if len(admins) == 0 {
		return ""
	}
	return admins[0]
}
