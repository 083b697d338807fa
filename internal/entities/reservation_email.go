package entities

type ReservationEmailData struct {
	CustomerName       string
	ConfirmationCode   string
	LotName            string
	SpotLabel          string
	VehicleReg         string
	StartTimeFormatted string
	EndTimeFormatted   string
	PriceDisplay       string
	CurrentYear        int
}
