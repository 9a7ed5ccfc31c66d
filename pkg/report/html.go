package report

import (
	"html/template"
	"io"

	"github.com/ja7ad/distill/pkg/distill"
)

// WriteHTML renders a standalone HTML report.
func WriteHTML(w io.Writer, p distill.Project, m Meta) error {
	type view struct {
		Meta     Meta
		Summary  []Item
		Sections []distill.SectionSizing
		P        distill.Project
	}
	return tpl.Execute(w, view{
		Meta:     m,
		Summary:  Summary(p),
		Sections: []distill.SectionSizing{p.Trays.Top, p.Trays.Bottom},
		P:        p,
	})
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>{{if .Meta.Title}}{{.Meta.Title}}{{else}}Column Design Report{{end}}</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px;margin-bottom:16px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
.small{color:#555}
</style>

<h1>{{if .Meta.Title}}{{.Meta.Title}}{{else}}Column Design Report{{end}}</h1>
{{if .Meta.ID}}<p class="small">Run {{.Meta.ID}}</p>{{end}}

<h2>Summary</h2>
<table>
<thead><tr><th>result</th><th>value</th><th>unit</th></tr></thead>
<tbody>
{{range .Summary}}<tr><td>{{.Label}}</td><td>{{.Value}}</td><td>{{.Unit}}</td></tr>
{{end}}
</tbody>
</table>

<h2>Components</h2>
<table>
<thead><tr><th>name</th><th>z</th><th>alpha</th><th>x_D</th><th>x_B</th><th>recovery</th></tr></thead>
<tbody>
{{$s := .P.Spec}}{{$a := .P.Input.Volatility}}
{{range $i, $c := .P.Components}}<tr>
<td>{{$c.Name}}</td>
<td>{{printf "%.4f" (index $s.Composition $i)}}</td>
<td>{{printf "%.3f" (index $a $i)}}</td>
<td>{{printf "%.5f" (index $s.XD $i)}}</td>
<td>{{printf "%.5f" (index $s.XB $i)}}</td>
<td>{{printf "%.4f" (index $s.Recoveries $i)}}</td>
</tr>
{{end}}
</tbody>
</table>

<h2>Tray sections</h2>
<table>
<thead><tr><th>section</th><th>L (kmol/h)</th><th>V (kmol/h)</th><th>rho_V (kg/m3)</th><th>u_f (m/s)</th><th>u_op (m/s)</th><th>A (m2)</th><th>D (m)</th></tr></thead>
<tbody>
{{range .Sections}}<tr>
<td>{{.Name}}</td>
<td>{{printf "%.2f" .Liquid}}</td>
<td>{{printf "%.2f" .Vapor}}</td>
<td>{{printf "%.3f" .VaporDensity}}</td>
<td>{{printf "%.3f" .FloodVelocity}}</td>
<td>{{printf "%.3f" .OperatingVelocity}}</td>
<td>{{printf "%.3f" .TotalArea}}</td>
<td>{{printf "%.3f" .Diameter.Meters}}</td>
</tr>
{{end}}
</tbody>
</table>

{{if .P.Sweep}}
<h2>Reflux sweep</h2>
<table>
<thead><tr><th>factor</th><th>RR</th><th>Nteo</th><th>N real</th><th>trays</th><th>D (m)</th><th>H (m)</th></tr></thead>
<tbody>
{{range .P.Sweep}}<tr>
<td>{{printf "%.2f" .Factor}}</td>
<td>{{printf "%.3f" .RR}}</td>
<td>{{printf "%.2f" .Nteo}}</td>
<td>{{printf "%.2f" .NReal}}</td>
<td>{{.Trays}}</td>
<td>{{printf "%.3f" .Diameter.Meters}}</td>
<td>{{printf "%.2f" .TotalHeight.Meters}}</td>
</tr>
{{end}}
</tbody>
</table>
{{end}}
</html>`))
