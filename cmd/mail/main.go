package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ualumni-dev/ualumni/backend/internal/config"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

// mailEnvelope mirrors domain.MailMessage with the data left raw, so the
// worker can decode it per type.
type mailEnvelope struct {
	Type string          `json:"type"`
	To   string          `json:"to"`
	Data json.RawMessage `json:"data"`
}

func buildMail(cfg *config.Config, env *mailEnvelope) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(cfg.Email.SMTP.Username); err != nil {
		return nil, fmt.Errorf("unable to set mail sender: %w", err)
	}
	if err := msg.To(env.To); err != nil {
		return nil, fmt.Errorf("unable to set mail recipient: %w", err)
	}

	switch env.Type {
	case domain.MailTypeVerification:
		data := domain.VerificationMailData{}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("unable to decode verification mail data: %w", err)
		}

		tmpl, err := template.ParseFiles(filepath.Join(cfg.Email.TemplatesDir, "verification_email.html"))
		if err != nil {
			return nil, fmt.Errorf("unable to parse mail template: %w", err)
		}
		if err := msg.SetBodyHTMLTemplate(tmpl, data); err != nil {
			return nil, fmt.Errorf("unable to set mail body: %w", err)
		}
		msg.Subject(fmt.Sprintf("Verificación UAlumni - %s %s", data.Names, data.Surnames))
	case domain.MailTypeSendResume:
		data := domain.SendResumeMailData{}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("unable to decode resume mail data: %w", err)
		}

		tmpl, err := template.ParseFiles(filepath.Join(cfg.Email.TemplatesDir, "send_resume_email.html"))
		if err != nil {
			return nil, fmt.Errorf("unable to parse mail template: %w", err)
		}
		if err := msg.SetBodyHTMLTemplate(tmpl, data); err != nil {
			return nil, fmt.Errorf("unable to set mail body: %w", err)
		}
		msg.Subject(fmt.Sprintf("Currículum %s %s - %s", data.Names, data.Surnames, data.Position))

		if err := msg.AttachReader(fmt.Sprintf("Currículum %s.pdf", data.Alumni), bytes.NewReader(data.ResumePDF)); err != nil {
			return nil, fmt.Errorf("unable to attach resume: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported mail type: %s", env.Type)
	}

	// fixed branding images referenced from the templates by cid
	for _, asset := range []string{"logo.png", "instagram.png"} {
		msg.EmbedFile(filepath.Join(cfg.Email.AssetsDir, asset))
	}

	return msg, nil
}

func main() {
	/**********************************************
	 * create logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * load configuration
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * create mail client
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("unable to create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("unable to connect to the mail server", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * connect to rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("unable to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("unable to open a channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"email_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("unable to declare the email queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("unable to consume messages", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					// the broker connection dropped and closed the
					// delivery channel
					logger.Error("delivery channel closed, stopping consumer")
					return
				}
				env := &mailEnvelope{}
				if err := json.Unmarshal(msg.Body, env); err != nil {
					logger.Error("unable to decode mail message", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				logger.Info("received mail message", slog.String("type", env.Type), slog.String("to", env.To))

				m, err := buildMail(cfg, env)
				if err != nil {
					logger.Error("unable to build mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("unable to send mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // requeue, the transport may recover
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("waiting for messages... (press CTRL+C to exit)")
	<-sigChan

	slog.Info("shutting down mail worker...")
	cancel()
	wg.Wait()
	slog.Info("mail worker shut down successfully")
}
