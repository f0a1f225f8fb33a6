// notify-smoke verifies the notification stack configuration and optionally
// sends a real test notification through the configured channels.
//
// Without -send it only reports which channels are live. With -send it
// dispatches a confirmation notification to the given recipients and prints
// the per-channel outcome. When PG_CONN_URL is set, the outcome is also
// recorded in the notifications audit table.
//
//	notify-smoke -phone 0771234567 -email citizen@example.com -send
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sevanet/notify/pkg/audit"
	"github.com/sevanet/notify/pkg/config"
	"github.com/sevanet/notify/pkg/email"
	"github.com/sevanet/notify/pkg/logger"
	"github.com/sevanet/notify/pkg/notify"
	"github.com/sevanet/notify/pkg/pg"
	"github.com/sevanet/notify/pkg/phone"
	"github.com/sevanet/notify/pkg/sms"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		phoneFlag  = flag.String("phone", "", "recipient phone number (any local format)")
		emailFlag  = flag.String("email", "", "recipient email address (optional)")
		nameFlag   = flag.String("name", "Test Citizen", "citizen name used in the test message")
		sendFlag   = flag.Bool("send", false, "actually dispatch a test notification")
		devDirFlag = flag.String("dev-dir", "", "write emails to this directory instead of SMTP")
	)
	flag.Parse()

	log := logger.New(logger.WithFormat(logger.FormatText))

	var smsCfg sms.Config
	if err := config.Load(&smsCfg); err != nil {
		return fmt.Errorf("load sms config: %w", err)
	}
	var emailCfg email.Config
	if err := config.Load(&emailCfg); err != nil {
		return fmt.Errorf("load email config: %w", err)
	}

	smsSender := sms.New(smsCfg, sms.WithLogger(log))
	fmt.Printf("SMS channel:   provider=%s\n", smsSender.Provider())

	var emailSender notify.EmailSender
	switch {
	case *devDirFlag != "":
		emailSender = email.NewDevSender(*devDirFlag)
		fmt.Printf("Email channel: dev sender, writing to %s\n", *devDirFlag)
	case emailCfg.Configured():
		emailSender = email.New(emailCfg, email.WithLogger(log))
		fmt.Printf("Email channel: smtp host=%s port=%d from=%s\n", emailCfg.SMTPHost, emailCfg.SMTPPort, emailCfg.From)
	default:
		emailSender = email.New(emailCfg, email.WithLogger(log))
		fmt.Println("Email channel: not configured")
	}

	ctx := context.Background()

	var store audit.Store
	if os.Getenv("PG_CONN_URL") != "" {
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return fmt.Errorf("load pg config: %w", err)
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()

		pgStore := audit.NewPostgresStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			return err
		}
		store = pgStore
		fmt.Println("Audit store:   postgres")
	} else {
		store = audit.NewMemoryStore()
		fmt.Println("Audit store:   memory (PG_CONN_URL not set)")
	}

	if !*sendFlag {
		fmt.Println("\nDry run complete. Re-run with -send to dispatch a test notification.")
		return nil
	}
	if *phoneFlag == "" {
		return fmt.Errorf("-send requires -phone")
	}

	req := notify.Request{
		Category:         notify.CategoryConfirmation,
		RecipientPhone:   *phoneFlag,
		RecipientEmail:   *emailFlag,
		CitizenName:      *nameFlag,
		ServiceName:      "Smoke Test Service",
		Department:       "SevaNet Operations",
		AppointmentDate:  time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		AppointmentTime:  "10:30 AM",
		BookingReference: fmt.Sprintf("SMOKE-%d", time.Now().Unix()),
	}

	fmt.Printf("\nDispatching test confirmation to %s", phone.Normalize(*phoneFlag))
	if *emailFlag != "" {
		fmt.Printf(" and %s", *emailFlag)
	}
	fmt.Println("...")

	dispatcher := notify.NewDispatcher(smsSender, emailSender, notify.WithLogger(log))
	outcome := dispatcher.Send(ctx, req)

	printChannel("SMS", outcome.SMS)
	if outcome.Email != nil {
		printChannel("Email", *outcome.Email)
	} else {
		fmt.Println("Email: skipped (no recipient address)")
	}

	entry := audit.NewEntry("smoke-test", "", req, outcome)
	if err := store.Record(ctx, entry); err != nil {
		log.Error("failed to record audit entry", "error", err)
	} else {
		fmt.Printf("Audit entry recorded: %s\n", entry.ID)
	}

	if !outcome.OverallSucceeded {
		return fmt.Errorf("all channels failed")
	}
	fmt.Println("\nSmoke test passed.")
	return nil
}

func printChannel(name string, result notify.ChannelResult) {
	if result.Succeeded {
		fmt.Printf("%s: ok, message id %s\n", name, result.ProviderMessageID)
		return
	}
	fmt.Printf("%s: FAILED: %s\n", name, result.ErrorDetail)
}
