package report

import (
	"bytes"
	"html/template"

	"github.com/Marym-Saleh/jrp-planner/internal/solver"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Policy.InstanceName}}</title></head>
<body style="font-family:sans-serif; padding:20px; background:{{.Palette.Background}}">
  <h1 style="color:{{.Palette.Setup}}">JRP Optimization Report: {{.Policy.InstanceName}}</h1>
  <p><b>System T*:</b> {{printf "%.5f" .Policy.BaseCycle}}</p>
  <p><b>Total Annual Cost:</b> ${{printf "%.2f" .Policy.TotalCost}}</p>
  <table border="1" cellspacing="0" cellpadding="6" style="border-color:{{.Palette.Accent}}">
    <thead style="background:{{.Palette.Holding}}; color:white">
      <tr>
        <th>ID</th>
        <th>Multiplier (m)</th>
        <th>Individual Cycle (Ti)</th>
        <th>Setup Cost ($)</th>
        <th>Holding Cost ($)</th>
        <th>Total Item Cost ($)</th>
      </tr>
    </thead>
    <tbody>
      {{- range .Policy.Items}}
      <tr>
        <td>{{.ID}}</td>
        <td>{{.Multiplier}}</td>
        <td>{{printf "%.5f" .Cycle}}</td>
        <td>${{printf "%.2f" .SetupCost}}</td>
        <td>${{printf "%.2f" .HoldingCost}}</td>
        <td>${{printf "%.2f" .TotalCost}}</td>
      </tr>
      {{- end}}
    </tbody>
  </table>
</body>
</html>
`))

// RenderHTML produces a standalone HTML document with the summary and the
// full policy table.
func RenderHTML(policy solver.Policy, palette Palette) ([]byte, error) {
	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, struct {
		Policy  solver.Policy
		Palette Palette
	}{policy, palette})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
