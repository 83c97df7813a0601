package api

import (
	"html/template"
	"io"
	"strconv"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
)

// Fixed-layout print document for an issued slip: clinic header, patient
// block, diagnosis/medication/treatment/test blocks, validity line and
// signature lines. Blank fields render with the same fallbacks the slip
// cards show.

type slipView struct {
	PatientName        string
	PatientID          string
	PatientAge         string
	PatientType        string
	Date               string
	ValidTill          string
	Doctor             string
	Diagnosis          string
	Medication         string
	Treatment          string
	Test               string
	PrescribedMedicine string
	PrescribedQuantity string
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func newSlipView(s *domain.MedicalSlip) slipView {
	quantity := ""
	if s.PrescribedMedicine != "" && s.PrescribedMedicineQuantity > 0 {
		quantity = strconv.Itoa(s.PrescribedMedicineQuantity)
	}
	return slipView{
		PatientName:        orElse(s.PatientName, "N/A"),
		PatientID:          orElse(s.PatientID, "N/A"),
		PatientAge:         orElse(s.PatientAge, "N/A"),
		PatientType:        orElse(s.PatientType, "N/A"),
		Date:               orElse(s.Date, "N/A"),
		ValidTill:          orElse(s.ValidTill, "N/A"),
		Doctor:             orElse(s.Doctor, "N/A"),
		Diagnosis:          orElse(s.Diagnosis, "No diagnosis provided"),
		Medication:         orElse(s.Medication, "No medication prescribed"),
		Treatment:          orElse(s.Treatment, "No treatment"),
		Test:               orElse(s.Test, "No test"),
		PrescribedMedicine: orElse(s.PrescribedMedicine, "No Medicine"),
		PrescribedQuantity: orElse(quantity, "N/A"),
	}
}

var slipTemplate = template.Must(template.New("slip").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Medical Slip</title>
<style>
  body { font-family: sans-serif; padding: 20px; }
  .slip { max-width: 800px; margin: 0 auto; border: 1px solid #ccc; padding: 20px; }
  .header { text-align: center; margin-bottom: 24px; }
  .header h1 { margin: 0; }
  .header p { color: #6b7280; margin: 4px 0 0; }
  .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; margin-bottom: 16px; }
  .label { font-size: 12px; color: #6b7280; margin: 0 0 4px; }
  .value { font-weight: 500; margin: 0; }
  .block { border: 1px solid #e5e7eb; border-radius: 4px; padding: 12px; min-height: 60px; margin-bottom: 16px; }
  .signatures { display: flex; justify-content: space-between; margin-top: 48px; padding-top: 24px; border-top: 1px solid #e5e7eb; }
  .signature-line { border-bottom: 1px solid #111; width: 160px; height: 40px; margin-top: 24px; }
</style>
</head>
<body>
<div class="slip">
  <div class="header">
    <h1>UAAR Healthcare Center</h1>
    <p>Medical Slip</p>
  </div>
  <div class="grid">
    <div><p class="label">Patient Name</p><p class="value">{{.PatientName}}</p></div>
    <div><p class="label">Patient ID</p><p class="value">{{.PatientID}}</p></div>
    <div><p class="label">Age</p><p class="value">{{.PatientAge}}</p></div>
    <div><p class="label">Patient Type</p><p class="value">{{.PatientType}}</p></div>
    <div><p class="label">Date</p><p class="value">{{.Date}}</p></div>
    <div><p class="label">Valid Till</p><p class="value">{{.ValidTill}}</p></div>
    <div><p class="label">Doctor</p><p class="value">{{.Doctor}}</p></div>
  </div>
  <p class="label">Diagnosis</p>
  <div class="block">{{.Diagnosis}}</div>
  <p class="label">Medication &amp; Instructions</p>
  <div class="block">{{.Medication}}</div>
  <p class="label">Treatment</p>
  <div class="block">{{.Treatment}}</div>
  <p class="label">Test</p>
  <div class="block">{{.Test}}</div>
  <p class="label">Prescribed Medicine</p>
  <div class="block">{{.PrescribedMedicine}} ({{.PrescribedQuantity}})</div>
  <div class="signatures">
    <div>
      <p class="label">Patient Signature</p>
      <div class="signature-line"></div>
    </div>
    <div>
      <p class="label">Doctor Signature</p>
      <div class="signature-line"></div>
    </div>
  </div>
</div>
</body>
</html>
`))

func renderSlip(w io.Writer, s *domain.MedicalSlip) error {
	return slipTemplate.Execute(w, newSlipView(s))
}
