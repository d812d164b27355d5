package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/sbilibin2017/gw-trip-planner/internal/client"
	"github.com/sbilibin2017/gw-trip-planner/internal/jwt"
	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
	"github.com/sbilibin2017/gw-trip-planner/internal/planner"
	"github.com/urfave/cli/v3"
)

var (
	errNoToken  = errors.New("no token: run login and pass --token or set PLANNER_TOKEN")
	errBadToken = errors.New("malformed token")
)

// Runner holds the dependencies shared by all planner commands.
type Runner struct {
	httpClient *http.Client
	output     io.Writer
	api        *client.Client
	session    *planner.Session
}

// RunnerOpts configures a Runner.
type RunnerOpts struct {
	HTTPClient *http.Client
	Output     io.Writer
}

func NewRunner(opts RunnerOpts) *Runner {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	return &Runner{
		httpClient: opts.HTTPClient,
		output:     opts.Output,
		session:    planner.NewSession(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range []func(*Runner) *cli.Command{
		registerCommand, loginCommand, logoutCommand, planCommand, plansCommand, wishlistCommand,
	} {
		commands = append(commands, fn(r))
	}
	return commands
}

// Setup builds the API client from the global flags and starts a session
// when a token was given. The user id is read from the token; the server
// still verifies it on every request.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	r.api = client.New(cmd.String("server"), r.httpClient)
	token := cmd.String("token")
	if token == "" {
		return ctx, nil
	}
	claims, err := jwt.ParseUnverified(token)
	if err != nil {
		return ctx, fmt.Errorf("%w: %w", errBadToken, err)
	}
	r.session.Start(token, claims.UserID.String(), "")
	return ctx, nil
}

func (r *Runner) requireSession() error {
	if !r.session.Active() {
		return errNoToken
	}
	return nil
}

func (r *Runner) Register(ctx context.Context, cmd *cli.Command) error {
	user, err := r.api.Register(ctx, cmd.String("username"), cmd.String("password"), cmd.String("email"))
	if err != nil {
		return err
	}
	fmt.Fprintf(r.output, "Registered %s <%s> (%s)\n", user.Username, user.Email, user.ID)
	return nil
}

// Login prints the token on its own line so it can be captured by a shell.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	token, user, err := r.api.Login(ctx, cmd.String("email"), cmd.String("password"))
	if err != nil {
		return err
	}
	r.session.Start(token, user.ID.String(), user.Username)
	fmt.Fprintln(r.output, token)
	return nil
}

func (r *Runner) Logout(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}
	if err := r.api.Logout(ctx, r.session.Token()); err != nil {
		return err
	}
	r.session.Clear()
	fmt.Fprintln(r.output, "Logged out")
	return nil
}

// Plan drives the wizard step by step, prints the itinerary preview and then
// saves, books or discards the plan.
func (r *Runner) Plan(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("save") && cmd.Bool("book") {
		return errors.New("--save and --book are mutually exclusive")
	}

	flow := planner.NewFlow(r.session, r.api)
	if err := flow.StartPlanning(); err != nil {
		return err
	}

	w := flow.Wizard()
	steps := []func() error{
		func() error { return w.SetDestination(cmd.String("destination")) },
		w.Next,
		func() error { return w.SetDurationDays(int(cmd.Int("days"))) },
		func() error { return w.SetBudget(cmd.String("budget")) },
		func() error { return w.SetTripType(cmd.String("trip-type")) },
		w.Next,
		func() error { return w.SetNumberOfPeople(int(cmd.Int("people"))) },
		func() error { return w.SetSafetyMonitoring(cmd.Bool("safety")) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			flow.CloseWizard()
			return err
		}
	}

	plan, err := flow.SubmitWizard()
	if err != nil {
		flow.CloseWizard()
		return err
	}

	preview, err := flow.Preview()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.output, "Trip to %s: %d days, %d people, %s, budget %q\n",
		plan.Destination, plan.DurationDays, plan.NumberOfPeople, plan.TripType, plan.Budget)
	fmt.Fprintln(r.output, preview)

	switch {
	case cmd.Bool("save"):
		saved, err := flow.Save(ctx)
		if err != nil {
			logger.Log.Errorw("save trip plan", "error", err)
			return err
		}
		fmt.Fprintf(r.output, "Trip plan saved successfully (%s)\n", saved.TripPlanID)
	case cmd.Bool("book"):
		if err := flow.Book(); err != nil {
			return err
		}
		fmt.Fprintln(r.output, "Opening booking for", plan.Destination)
	default:
		return flow.ClosePreview()
	}
	return nil
}

func (r *Runner) Plans(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}
	plans, err := r.api.ListTripPlans(ctx, r.session.Token())
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Fprintln(r.output, "No saved trip plans")
		return nil
	}
	for _, p := range plans {
		fmt.Fprintf(r.output, "%s\t%v\t%d days\t%d people\t%s\t%s\n",
			p.TripPlanID, []string(p.Destinations), p.DurationDays, p.NumberOfPeople, p.Budget,
			p.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func (r *Runner) WishlistAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}
	item, err := r.api.AddToWishlist(ctx, r.session.Token(), cmd.String("id"), cmd.String("name"))
	if err != nil {
		return err
	}
	fmt.Fprintf(r.output, "Added %s to wishlist\n", item.DestinationName)
	return nil
}

func (r *Runner) WishlistList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}
	items, count, err := r.api.ListWishlist(ctx, r.session.Token())
	if err != nil {
		return err
	}
	fmt.Fprintf(r.output, "Wishlist (%d)\n", count)
	for _, it := range items {
		fmt.Fprintf(r.output, "%s\t%s\n", it.DestinationID, it.DestinationName)
	}
	return nil
}
