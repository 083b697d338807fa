package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"rapidpark/internal/entities"
)

// SenderService delivers the confirmation ticket by email and SMS. Both
// sends run in their own goroutine and only log on failure: notification is
// outside the reservation's transactional guarantee.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendReservationTicket(res entities.ReservationResponse) {
	if res.Email != "" {
		s.sendTicketEmail(res)
	}
	if res.Phone != "" {
		s.sendTicketSMS(res)
	}
}

func (s *SenderService) sendTicketEmail(res entities.ReservationResponse) {
	emailData := entities.ReservationEmailData{
		CustomerName:       res.CustomerName,
		ConfirmationCode:   res.ConfirmationCode,
		LotName:            res.LotName,
		SpotLabel:          res.SpotLabel,
		VehicleReg:         res.VehicleReg,
		StartTimeFormatted: res.StartTime.Format("02 Jan 2006 15:04 MST"),
		EndTimeFormatted:   res.EndTime.Format("02 Jan 2006 15:04 MST"),
		PriceDisplay:       res.PriceDisplay,
		CurrentYear:        time.Now().Year(),
	}

	emailSubject := fmt.Sprintf("Your RapidPark Ticket %s", res.ConfirmationCode)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour RapidPark reservation is confirmed.\n"+
			"Confirmation: %s\n"+
			"Lot: %s\n"+
			"Spot: %s\n"+
			"Vehicle: %s\n"+
			"Start: %s\n"+
			"End: %s\n"+
			"Price: %s\n\n"+
			"Show this email upon arrival.\n"+
			"Thank you for choosing RapidPark!\n",
		emailData.CustomerName, emailData.ConfirmationCode, emailData.LotName,
		emailData.SpotLabel, emailData.VehicleReg,
		emailData.StartTimeFormatted, emailData.EndTimeFormatted, emailData.PriceDisplay,
	)

	htmlBody := ""
	tmplPath := filepath.Join("internal", "templates", "reservation_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("WARN: could not parse email template (%s): %v", tmplPath, err)
	} else {
		var htmlBodyBuffer bytes.Buffer
		if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
			log.Printf("WARN: could not render email template for reservation %s: %v", emailData.ConfirmationCode, err)
		} else {
			htmlBody = htmlBodyBuffer.String()
		}
	}

	go func(toEmail, toName, subject, plainBody, htmlBodyContent string) {
		if errEmail := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); errEmail != nil {
			log.Printf("WARN (async): ticket email for reservation %s failed: %v", emailData.ConfirmationCode, errEmail)
		}
	}(res.Email, emailData.CustomerName, emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) sendTicketSMS(res entities.ReservationResponse) {
	smsMessage := fmt.Sprintf("RapidPark: reservation %s confirmed!\nSpot %s in %s.\nCheck-in: %s.\nMore details in your email.",
		res.ConfirmationCode, res.SpotLabel, res.LotName,
		res.StartTime.Format("02/01 15:04"),
	)

	go func(toNumber, body string) {
		if errSMS := SendSMS(toNumber, body); errSMS != nil {
			log.Printf("WARN (async): reservation %s was created, but the confirmation SMS to %s failed: %v",
				res.ConfirmationCode, toNumber, errSMS)
		}
	}(res.Phone, smsMessage)
}
