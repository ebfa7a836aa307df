package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendHandoffAlert(toEmail, sessionKey, userName, triggerMessage string) error
	SendReservationAlert(toEmail, sessionKey, userName, service, date, timeSlot, phone string, people int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendHandoffAlert(toEmail, sessionKey, userName, triggerMessage string) error {
	if userName == "" {
		userName = "Bilinmiyor"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Canlı destek talebi: "+sessionKey)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Müşteri canlı temsilci bekliyor</h2>
			<p><b>Oturum:</b> %s</p>
			<p><b>İsim:</b> %s</p>
			<p><b>Son mesaj:</b> %s</p>
			<p>Asistan bu konuşmayı devretti, lütfen en kısa sürede dönüş yapın.</p>
		</div>
	`, sessionKey, userName, triggerMessage)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send handoff alert for %s: %v\n", sessionKey, err)
		return err
	}

	fmt.Printf("[MAILER] Handoff alert sent for %s\n", sessionKey)
	return nil
}

func (s *emailService) SendReservationAlert(toEmail, sessionKey, userName, service, date, timeSlot, phone string, people int) error {
	if userName == "" {
		userName = "Bilinmiyor"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Yeni rezervasyon talebi: "+service)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Yeni rezervasyon talebi</h2>
			<p><b>Oturum:</b> %s</p>
			<p><b>İsim:</b> %s</p>
			<p><b>Hizmet:</b> %s</p>
			<p><b>Tarih:</b> %s</p>
			<p><b>Saat:</b> %s</p>
			<p><b>Kişi sayısı:</b> %d</p>
			<p><b>Telefon:</b> %s</p>
			<p>Müşteriyi arayarak rezervasyonu onaylayın.</p>
		</div>
	`, sessionKey, userName, service, date, timeSlot, people, phone)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send reservation alert for %s: %v\n", sessionKey, err)
		return err
	}

	fmt.Printf("[MAILER] Reservation alert sent for %s\n", sessionKey)
	return nil
}
