package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/capture"
	"github.com/divvun/Kielipankki-donatespeech-backend/internal/config"
	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/identity"
	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/recorder"
	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/schedule"
	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/upload"
	"github.com/divvun/Kielipankki-donatespeech-backend/internal/httpapi"
	"github.com/divvun/Kielipankki-donatespeech-backend/internal/sqlite"
	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	identityRepo := sqlite.NewIdentityRepository(db)
	progressRepo := sqlite.NewProgressRepository(db)

	api := httpapi.NewClient(cfg.Backend.BaseURL, cfg.Timeout(), logger)

	identitySvc := identity.NewService(identityRepo, api, logger)
	engine := schedule.NewEngine(api, progressRepo, logger)
	uploadSvc := upload.NewService(api, api, cfg.Schedule.Language, nil, logger)

	ctx := context.Background()

	cmd := "donate"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "donate":
		err = runDonation(ctx, cfg, logger, identitySvc, engine, uploadSvc)
	case "themes":
		err = listThemes(ctx, api)
	case "reset":
		err = runReset(ctx, identitySvc, engine)
	case "delete-client":
		if _, err = identitySvc.EnsureClient(ctx); err == nil {
			err = identitySvc.DeleteClient(ctx)
		}
	case "delete-session":
		if len(os.Args) < 3 {
			err = fmt.Errorf("usage: recorder delete-session <session-id>")
			break
		}
		if _, err = identitySvc.EnsureClient(ctx); err == nil {
			err = identitySvc.DeleteSession(ctx, os.Args[2])
		}
	case "delete-recording":
		if len(os.Args) < 4 {
			err = fmt.Errorf("usage: recorder delete-recording <session-id> <recording-id>")
			break
		}
		if _, err = identitySvc.EnsureClient(ctx); err == nil {
			err = identitySvc.DeleteRecording(ctx, os.Args[2], os.Args[3])
		}
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		logger.Error("command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

// runDonation walks the schedule once, capturing and uploading every
// recording slot from the configured audio source.
func runDonation(
	ctx context.Context,
	cfg config.Config,
	logger *slog.Logger,
	identitySvc *identity.Service,
	engine *schedule.Engine,
	uploadSvc *upload.Service,
) error {
	client, err := identitySvc.EnsureClient(ctx)
	if err != nil {
		return err
	}
	sess, err := identitySvc.BeginSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = identitySvc.EndSession(ctx)
	}()

	if err := engine.Load(ctx, cfg.Schedule.ID); err != nil {
		return err
	}
	if err := engine.Bind(ctx, client.ID, &sess.ID); err != nil {
		return err
	}

	device := capture.NewFileDevice(cfg.Audio.SourcePath)
	rec := recorder.New(device, nil, logger)

	for {
		el := engine.CurrentElement()
		if el == nil {
			break
		}

		var progress *schedule.Progress
		if p, ok := engine.RecordingProgress(el); ok {
			progress = &p
		}
		fmt.Println(schedule.LabelOrBlank(schedule.StatusLabel(el, progress)))

		if el.Item.IsRecording {
			if err := donateItem(ctx, cfg, logger, rec, device, engine, uploadSvc, client, sess); err != nil {
				return err
			}
		}

		if err := engine.Advance(); err != nil {
			return err
		}
	}

	fmt.Printf("Donated %.0f seconds in total. Thank you!\n", engine.TotalRecordingDuration())
	return nil
}

// donateItem records one slot from the audio source until it runs out, then
// uploads the captured take.
func donateItem(
	ctx context.Context,
	cfg config.Config,
	logger *slog.Logger,
	rec *recorder.Recorder,
	device *capture.ReaderDevice,
	engine *schedule.Engine,
	uploadSvc *upload.Service,
	client *identity.Client,
	sess *identity.Session,
) error {
	if err := rec.Initialize(ctx); err != nil {
		view := recorder.ViewFor(rec.Status())
		fmt.Println(view.Title)
		for _, line := range view.Body {
			fmt.Println(line)
		}
		return err
	}

	if err := rec.StartOrResume(); err != nil {
		return err
	}
	<-device.Done()

	dur, err := rec.Stop()
	if err != nil {
		return err
	}
	seconds := dur.Seconds()

	recordingID := uuid.NewString()
	outcome := uploadSvc.Upload(ctx, upload.Recording{
		Filename:    recordingID + "." + cfg.Audio.Extension,
		Data:        rec.Buffer(),
		RecordingID: recordingID,
		ClientID:    client.ID,
		SessionID:   &sess.ID,
		Duration:    &seconds,
		CapturedAt:  time.Now(),
	})
	if !outcome.Succeeded() {
		// The captured buffer stays intact; this batch runner reports the
		// failure and moves on instead of retrying.
		logger.Warn("upload failed", "recording_id", recordingID,
			"ticket_obtained", outcome.TicketObtained, "error", outcome.Err)
		return rec.Discard()
	}

	if err := engine.AddRecording(ctx, recordingID, seconds); err != nil {
		return err
	}
	return rec.Discard()
}

func listThemes(ctx context.Context, api *httpapi.Client) error {
	themes, err := api.LoadThemes(ctx)
	if err != nil {
		return err
	}
	for _, theme := range themes {
		fmt.Printf("%s\t%s\t(%d schedules)\n", theme.ID, theme.Content.Description, len(theme.Content.ScheduleIDs))
	}
	return nil
}

func runReset(ctx context.Context, identitySvc *identity.Service, engine *schedule.Engine) error {
	// Irreversible: the previous client identifier cannot be recovered and
	// remote recordings can no longer be tied back to this installation.
	client, err := identitySvc.Reset(ctx)
	if err != nil {
		return err
	}
	engine.Reset()
	fmt.Printf("Local data cleared. New client identity: %s\n", client.ID)
	return nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
