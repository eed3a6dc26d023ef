package records

// LocationCodes maps each partner clinic name to the short code the
// front desk uses when minting patient ids.
var LocationCodes = map[string]string{
	"Arthi Hospital, Kumbakonam":            "KUM",
	"Senthil Nursing Home, Puthukottai":     "PUTS",
	"Hridya Cardiac Care, Puthukottai":      "PUTH",
	"Thulir Hospital, Tiruvarur":            "TIR",
	"Perambalur Cardiac Centre, Perambalur": "PER",
	"Star Kids Hospital, Dindugul":          "DIN",
	"Pugazhini Hospital, Trichy":            "TRI",
}
