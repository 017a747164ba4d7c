package notify

import (
	"context"
	"fmt"

	"busrent/pkg/model"

	"gopkg.in/gomail.v2"
)

// EmailSender abstracts the SMTP transport so channel behavior can be tested
// without a mail server.
type EmailSender interface {
	Send(m *gomail.Message) error
}

type smtpSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(host string, port int, user, password string) EmailSender {
	return &smtpSender{dialer: gomail.NewDialer(host, port, user, password)}
}

func (s *smtpSender) Send(m *gomail.Message) error {
	return s.dialer.DialAndSend(m)
}

// OwnerEmailChannel mails a booking summary to the fixed operator address.
type OwnerEmailChannel struct {
	sender EmailSender
	from   string
	to     string
}

func NewOwnerEmailChannel(sender EmailSender, from, to string) *OwnerEmailChannel {
	return &OwnerEmailChannel{sender: sender, from: from, to: to}
}

func (c *OwnerEmailChannel) Name() string { return "owner_email" }

func (c *OwnerEmailChannel) Send(ctx context.Context, outcome *model.AdmissionOutcome) error {
	res := outcome.Reservation

	email := res.ClientEmail
	if email == "" {
		email = "brak"
	}

	body := fmt.Sprintf(`<h2>Nowa rezerwacja online</h2>
<p><b>Klient:</b> %s<br>
<b>Telefon:</b> %s<br>
<b>Email:</b> %s</p>
<p><b>Typ wynajmu:</b> %s<br>
<b>Termin:</b> %s<br>
<b>Godziny:</b> %s - %s<br>
<b>Cena:</b> %s zl</p>
<p><a href="%s">Otworz rezerwacje w ClickUp</a></p>
<p>Rezerwacja wymaga potwierdzenia telefonicznego.</p>`,
		res.ClientName, res.ClientPhone, email,
		res.CategoryLabel, res.DateRange, res.StartClock, res.EndClock,
		model.FormatPLN(res.Price), outcome.TaskURL,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", c.to)
	m.SetHeader("Subject", fmt.Sprintf("Nowa rezerwacja: %s (%s)", res.DateRange, res.ClientName))
	m.SetBody("text/html", body)

	if err := c.sender.Send(m); err != nil {
		return fmt.Errorf("owner email: %w", err)
	}
	return nil
}

// ClientEmailChannel mails the booking confirmation and pickup instructions
// to the client. Clients without an email address are skipped, which is a
// valid outcome, not a failure.
type ClientEmailChannel struct {
	sender      EmailSender
	from        string
	notifyPhone string
	depositPLN  int
}

func NewClientEmailChannel(sender EmailSender, from, notifyPhone string, depositPLN int) *ClientEmailChannel {
	return &ClientEmailChannel{sender: sender, from: from, notifyPhone: notifyPhone, depositPLN: depositPLN}
}

func (c *ClientEmailChannel) Name() string { return "client_email" }

func (c *ClientEmailChannel) Send(ctx context.Context, outcome *model.AdmissionOutcome) error {
	res := outcome.Reservation
	if res.ClientEmail == "" {
		return nil
	}

	contact := ""
	if c.notifyPhone != "" {
		contact = fmt.Sprintf("<p>Pytania? Zadzwon: %s</p>", c.notifyPhone)
	}

	body := fmt.Sprintf(`<h2>Dziekujemy za rezerwacje!</h2>
<p>Twoja rezerwacja zostala przyjeta i oczekuje na potwierdzenie telefoniczne.</p>
<p><b>Typ wynajmu:</b> %s<br>
<b>Termin:</b> %s<br>
<b>Godziny:</b> %s - %s<br>
<b>Cena calkowita:</b> %s zl<br>
<b>Kaucja (zwrotna):</b> %d zl</p>
<h3>Informacje organizacyjne</h3>
<ul>
<li>Odbior busa od godziny %s, zwrot do godziny %s.</li>
<li>Wymagane dokumenty: dowod osobisty oraz prawo jazdy kat. B.</li>
<li>Platnosc: gotowka lub przelew przy odbiorze; kaucja pobierana przy wydaniu pojazdu.</li>
<li>Limit kilometrow: 300 km / doba, nadwyzka rozliczana przy zwrocie.</li>
<li>Bus zwracany z pelnym bakiem.</li>
</ul>
%s`,
		res.CategoryLabel, res.DateRange, res.StartClock, res.EndClock,
		model.FormatPLN(res.Price), c.depositPLN,
		res.StartClock, res.EndClock,
		contact,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", res.ClientEmail)
	m.SetHeader("Subject", "Potwierdzenie rezerwacji - wynajem busa")
	m.SetBody("text/html", body)

	if err := c.sender.Send(m); err != nil {
		return fmt.Errorf("client email: %w", err)
	}
	return nil
}
