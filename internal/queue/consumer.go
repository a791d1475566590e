// Package queue contains the background consumer that listens to the
// booking.requested queue and emails the artist about each new
// booking request.
package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/artist-directory/internal/config"
)

const bookingQueueName = "booking.requested"

// StartBookingConsumer connects to RabbitMQ, declares the
// booking.requested queue (durable), and starts consuming messages.
// Each message is rendered into the booking notification email and
// delivered over SMTP; without SMTP configuration the rendered mail is
// appended to logs/bookings.log instead. The function runs a
// reconnect loop with exponential backoff and keeps running across
// broker restarts; failed messages are rejected without requeue so a
// poison message cannot wedge the queue.
func StartBookingConsumer(cfg config.Config) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			log.Printf("booking-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn, cfg); err != nil {
			log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection, cfg config.Config) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("booking-consumer: set QoS failed: %v", err)
	}

	_, err = ch.QueueDeclare(bookingQueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(bookingQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(cfg, d.Body); err != nil {
			log.Printf("booking-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(cfg config.Config, body []byte) error {
	var ev BookingRequestedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	subject := fmt.Sprintf("Nueva solicitud de show para %s", ev.ArtistName)
	html := renderBookingEmail(ev)

	recipients := []string{}
	if ev.ArtistEmail != "" {
		recipients = append(recipients, ev.ArtistEmail)
	}
	if cfg.AdminEmail != "" {
		recipients = append(recipients, cfg.AdminEmail)
	}
	if len(recipients) == 0 {
		return errors.New("no recipients for booking notification")
	}

	if cfg.SMTPHost == "" {
		return appendToLog(ev, subject)
	}
	return sendMail(cfg, recipients, subject, html)
}

// renderBookingEmail builds the HTML body of the notification,
// mirroring the template the frontend's recipients already know.
func renderBookingEmail(ev BookingRequestedEvent) string {
	orDefault := func(p *string, def string) string {
		if p != nil && *p != "" {
			return *p
		}
		return def
	}
	msg := "Sin detalles adicionales."
	if ev.Message != nil && *ev.Message != "" {
		msg = strings.ReplaceAll(*ev.Message, "\n", "<br>")
	}
	var b strings.Builder
	b.WriteString("<h2>Nueva solicitud de show / presupuesto</h2>")
	fmt.Fprintf(&b, "<p><b>Artista:</b> %s (%s)</p>", ev.ArtistName, ev.ArtistSlug)
	fmt.Fprintf(&b, "<p><b>Cliente:</b> %s</p>", ev.Name)
	fmt.Fprintf(&b, "<p><b>Email:</b> %s</p>", ev.Email)
	fmt.Fprintf(&b, "<p><b>Teléfono:</b> %s</p>", ev.Phone)
	fmt.Fprintf(&b, "<p><b>Tipo de evento:</b> %s</p>", ev.EventType)
	fmt.Fprintf(&b, "<p><b>Ciudad del evento:</b> %s</p>", ev.City)
	fmt.Fprintf(&b, "<p><b>Fecha estimada:</b> %s</p>", orDefault(ev.Date, "No especificada"))
	fmt.Fprintf(&b, "<p><b>Presupuesto estimado:</b> %s</p>", orDefault(ev.Budget, "No especificado"))
	b.WriteString("<p><b>Mensaje:</b></p>")
	fmt.Fprintf(&b, "<p>%s</p>", msg)
	b.WriteString("<hr /><p>Esta solicitud fue enviada desde Artbook.</p>")
	return b.String()
}

func sendMail(cfg config.Config, to []string, subject, html string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", cfg.MailFrom)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(html)

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	if err := smtp.SendMail(addr, auth, envelopeFrom(cfg.MailFrom), to, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// envelopeFrom strips an optional display name, "Name <a@b>" -> "a@b".
// The SMTP envelope takes a bare address even though the header keeps
// the full form.
func envelopeFrom(from string) string {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.LastIndex(from, ">"); j > i {
			return from[i+1 : j]
		}
	}
	return from
}

// appendToLog is the delivery fallback when SMTP is not configured:
// one line per booking under logs/bookings.log.
func appendToLog(ev BookingRequestedEvent, subject string) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "bookings.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s | booking_id=%d | artist=%s (%s) | from=%s <%s> | phone=%s | event=%s | city=%s\n",
		ev.RequestedAt, subject, ev.BookingID, ev.ArtistName, ev.ArtistSlug,
		ev.Name, ev.Email, ev.Phone, ev.EventType, ev.City)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
