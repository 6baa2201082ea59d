package cli

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/app/services/core/auth"
	"ccsed-client/internal/app/services/core/directory"
	"ccsed-client/internal/app/services/core/reservations"
	"ccsed-client/internal/app/services/core/session"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/dto/requests"
	"ccsed-client/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// RootCommand builds the ccsed command tree bound to app.
func (a *App) RootCommand() *Command {
	root := &Command{
		Name:    "ccsed",
		Summary: "Community health client: account, requests for attention and public directories",
		Subcommands: []*Command{
			a.loginCommand(),
			a.registerCommand(),
			a.logoutCommand(),
			a.whoamiCommand(),
			a.reservationsCommand(),
			a.watchCommand(),
			a.reserveCommand(),
			a.notifyStaffCommand(),
			a.directoryCommand(),
		},
	}
	for _, sub := range root.Subcommands {
		a.instrument(sub)
	}
	return root
}

// instrument tags each run with a request id and logs its outcome and
// duration.
func (a *App) instrument(cmd *Command) {
	run := cmd.Run
	if run == nil {
		return
	}
	cmd.Run = func(ctx context.Context, args []string) error {
		ctx = utils.WithRequestID(ctx)
		return utils.LogOperation(a.Log, "cli."+cmd.Name, utils.GetRequestID(ctx), func() error {
			return run(ctx, args)
		})
	}
}

func (a *App) loginCommand() *Command {
	var request requests.LoginUser
	return &Command{
		Name:    "login",
		Summary: "Login and keep the session on this device",
		Usage:   "ccsed login --email <email> --password <password>",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
			fs.StringVar(&request.Email, "email", "", "account email")
			fs.StringVar(&request.Password, "password", "", "account password")
			return fs
		},
		Run: func(ctx context.Context, _ []string) error {
			usecase := auth.NewAuthUsecase(a.Gateway, a.SessionStore, a.InternalConfig, a.Log)
			result, err := usecase.Login(ctx, &request)
			if err != nil {
				return a.report(err)
			}
			a.Presenter.Success(constvars.LoginSuccess)
			a.Presenter.RouteToHome(result.IdentityName)
			return nil
		},
	}
}

func (a *App) registerCommand() *Command {
	var (
		request requests.RegisterUser
		login   bool
	)
	return &Command{
		Name:    "register",
		Summary: "Create an account",
		Usage:   "ccsed register --username <name> --email <email> --password <password> [--login]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("register", pflag.ContinueOnError)
			fs.StringVar(&request.Username, "username", "", "display name")
			fs.StringVar(&request.Email, "email", "", "account email")
			fs.StringVar(&request.Password, "password", "", "account password")
			fs.BoolVar(&login, "login", false, "login right after the account is created")
			return fs
		},
		Run: func(ctx context.Context, _ []string) error {
			internalConfig := *a.InternalConfig
			internalConfig.Session.AutoLoginAfterRegister = internalConfig.Session.AutoLoginAfterRegister || login

			usecase := auth.NewAuthUsecase(a.Gateway, a.SessionStore, &internalConfig, a.Log)
			output, err := usecase.Register(ctx, &request)
			if err != nil {
				if output != nil {
					a.Presenter.Success(constvars.RegisterSuccess)
				}
				return a.report(err)
			}
			if output.Session == nil {
				a.Presenter.Success(constvars.RegisterSuccess)
				return nil
			}
			a.Presenter.Success(constvars.RegisterLoginSuccess)
			a.Presenter.RouteToHome(output.Session.IdentityName)
			return nil
		},
	}
}

func (a *App) logoutCommand() *Command {
	return &Command{
		Name:    "logout",
		Summary: "Forget the session stored on this device",
		Run: func(ctx context.Context, _ []string) error {
			usecase := auth.NewAuthUsecase(a.Gateway, a.SessionStore, a.InternalConfig, a.Log)
			if err := usecase.Logout(ctx); err != nil {
				return a.report(err)
			}
			a.Presenter.Success(constvars.LogoutSuccess)
			return nil
		},
	}
}

func (a *App) whoamiCommand() *Command {
	return &Command{
		Name:    "whoami",
		Summary: "Verify the stored session with the server",
		Run: func(ctx context.Context, _ []string) error {
			controller := session.NewSessionController(a.Gateway, a.SessionStore, a.Presenter, a.Log)
			if controller.Activate(ctx) != models.SessionAuthenticated {
				return ErrReported
			}
			return nil
		},
	}
}

func (a *App) reservationsCommand() *Command {
	return &Command{
		Name:    "reservations",
		Summary: "List your requests for attention",
		Run: func(ctx context.Context, _ []string) error {
			controller := reservations.NewReservationController(a.Gateway, a.SessionStore, a.ChannelFactory, a.Presenter, a.Log)
			controller.Load(ctx)
			return nil
		},
	}
}

func (a *App) watchCommand() *Command {
	return &Command{
		Name:    "watch",
		Summary: "List your requests and refresh them when one is attended",
		Run: func(ctx context.Context, _ []string) error {
			controller := reservations.NewReservationController(a.Gateway, a.SessionStore, a.ChannelFactory, a.Presenter, a.Log)
			a.track(controller)
			controller.Mount(ctx)
			<-ctx.Done()
			controller.Unmount()
			return nil
		},
	}
}

func (a *App) reserveCommand() *Command {
	var request requests.CreateReservation
	return &Command{
		Name:    "reserve",
		Summary: "Request medical attention",
		Usage:   "ccsed reserve --type <presencial|virtual> --address <address> --phone <phone>",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("reserve", pflag.ContinueOnError)
			fs.StringVar(&request.AttentionType, "type", constvars.AttentionTypeInPerson, "attention type: presencial or virtual")
			fs.StringVar(&request.Address, "address", "", "where the patient can be found")
			fs.StringVar(&request.Phone, "phone", "", "contact phone")
			return fs
		},
		Run: func(ctx context.Context, _ []string) error {
			controller := reservations.NewReservationController(a.Gateway, a.SessionStore, a.ChannelFactory, a.Presenter, a.Log)
			reservationID, err := controller.CreateReservation(ctx, &request)
			if err != nil {
				return a.report(err)
			}
			a.Presenter.Success(fmt.Sprintf("%s (%s)", constvars.ReservationCreatedSuccess, reservationID))
			return nil
		},
	}
}

func (a *App) notifyStaffCommand() *Command {
	return &Command{
		Name:    "notify-staff",
		Summary: "Tell the staff you are still waiting on a request",
		Usage:   "ccsed notify-staff <reservation-id>",
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one reservation id")
			}
			controller := reservations.NewReservationController(a.Gateway, a.SessionStore, a.ChannelFactory, silentReservationView{a.Presenter}, a.Log)
			controller.Load(ctx)
			if err := controller.RequestStaffAttention(ctx, args[0]); err != nil {
				return a.report(err)
			}
			a.Presenter.ShowAlert(constvars.AlertStaffNotifiedTitle, constvars.StaffNotifiedSuccess)
			return nil
		},
	}
}

func (a *App) directoryCommand() *Command {
	kinds := make([]string, 0, len(models.DirectoryKinds))
	for _, kind := range models.DirectoryKinds {
		kinds = append(kinds, string(kind))
	}
	return &Command{
		Name:    "directory",
		Summary: "Browse public listings: " + strings.Join(kinds, ", "),
		Usage:   "ccsed directory <" + strings.Join(kinds, "|") + ">",
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected one of: %s", strings.Join(kinds, ", "))
			}
			kind := models.DirectoryKind(args[0])
			usecase := directory.NewDirectoryUsecase(a.DirectoryGateway, a.Log)
			entries, err := usecase.ListEntries(ctx, kind)
			if err != nil {
				return a.report(err)
			}
			a.Presenter.ShowDirectory(kind, entries)
			return nil
		},
	}
}

// silentReservationView keeps routing and errors but skips the list render
// when a command loads reservations only to look one up.
type silentReservationView struct {
	*Presenter
}

func (silentReservationView) ShowLoading(bool) {}

func (silentReservationView) ShowReservations([]models.Reservation) {}
