package main

import "github.com/urfave/cli/v3"

func registerCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Usage: "Account name", Required: true},
			&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
			&cli.StringFlag{Name: "password", Usage: "Password, at least 6 characters", Required: true},
		},
		Action: r.Register,
	}
}

func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in and print a bearer token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
			&cli.StringFlag{Name: "password", Usage: "Password", Required: true},
		},
		Action: r.Login,
	}
}

func logoutCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Revoke the current token",
		Action: r.Logout,
	}
}

// planCommand walks the wizard with the values given as flags.
func planCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Build a trip plan, preview its itinerary and optionally save or book it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "destination", Aliases: []string{"d"}, Usage: "Where to go"},
			&cli.IntFlag{Name: "days", Usage: "Trip length in days (1-21)", Value: 3},
			&cli.StringFlag{Name: "budget", Usage: "Budget, free text"},
			&cli.StringFlag{Name: "trip-type", Usage: "cultural, adventure, spiritual, nature or food", Value: "cultural"},
			&cli.IntFlag{Name: "people", Usage: "Number of travellers (1-10)", Value: 2},
			&cli.BoolFlag{Name: "safety", Usage: "Enable safety monitoring"},
			&cli.BoolFlag{Name: "save", Usage: "Save the plan after the preview"},
			&cli.BoolFlag{Name: "book", Usage: "Go to booking instead of saving"},
		},
		Action: r.Plan,
	}
}

func plansCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "plans",
		Usage:  "List saved trip plans",
		Action: r.Plans,
	}
}

func wishlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "wishlist",
		Usage: "Wishlist operations",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a destination to the wishlist",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "Destination id", Required: true},
					&cli.StringFlag{Name: "name", Usage: "Destination name", Required: true},
				},
				Action: r.WishlistAdd,
			},
			{
				Name:   "list",
				Usage:  "List wishlist items",
				Action: r.WishlistList,
			},
		},
	}
}
