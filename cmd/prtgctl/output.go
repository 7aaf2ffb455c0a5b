package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	prtg "github.com/CC-Digital-Innovation/go-prtg"
)

// entityColumn binds one table column header to the record field it shows.
type entityColumn struct {
	header string
	value  func(prtg.Entity) string
}

var (
	probeTable = []entityColumn{
		{"ID", func(e prtg.Entity) string { return strconv.Itoa(e.ObjID()) }},
		{"NAME", prtg.Entity.Name},
		{"STATUS", prtg.Entity.Status},
		{"ACTIVE", activeColumn},
		{"GROUPS", func(e prtg.Entity) string { return entityField(e, "groupnum") }},
		{"DEVICES", func(e prtg.Entity) string { return entityField(e, "devicenum") }},
	}

	groupTable = []entityColumn{
		{"ID", func(e prtg.Entity) string { return strconv.Itoa(e.ObjID()) }},
		{"NAME", prtg.Entity.Name},
		{"PROBE", func(e prtg.Entity) string { return entityField(e, "probe") }},
		{"PARENT", func(e prtg.Entity) string { return strconv.Itoa(e.ParentID()) }},
		{"STATUS", prtg.Entity.Status},
		{"ACTIVE", activeColumn},
	}

	deviceTable = []entityColumn{
		{"ID", func(e prtg.Entity) string { return strconv.Itoa(e.ObjID()) }},
		{"NAME", prtg.Entity.Name},
		{"HOST", prtg.Entity.Host},
		{"GROUP", func(e prtg.Entity) string { return entityField(e, "group") }},
		{"STATUS", prtg.Entity.Status},
		{"ACTIVE", activeColumn},
	}

	sensorTable = []entityColumn{
		{"ID", func(e prtg.Entity) string { return strconv.Itoa(e.ObjID()) }},
		{"NAME", prtg.Entity.Name},
		{"DEVICE", func(e prtg.Entity) string { return entityField(e, "device") }},
		{"GROUP", func(e prtg.Entity) string { return entityField(e, "group") }},
		{"STATUS", prtg.Entity.Status},
		{"PRIORITY", func(e prtg.Entity) string { return strconv.Itoa(e.Priority()) }},
	}
)

func activeColumn(e prtg.Entity) string {
	if e.Active() {
		return "yes"
	}
	return "no"
}

// entityField renders a raw record field for columns without a typed
// accessor. JSON numbers arrive as float64; integral ones print bare.
func entityField(e prtg.Entity, key string) string {
	value, ok := e[key]
	if !ok {
		return ""
	}
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprint(value)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printEntityTable(w io.Writer, entities []prtg.Entity, columns []entityColumn) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	headers := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.header
		rules[i] = strings.Repeat("-", len(col.header))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))

	for _, e := range entities {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = col.value(e)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

// printEntities writes a listing as a table, or as a JSON array with --json.
func (a *app) printEntities(entities []prtg.Entity, columns []entityColumn) error {
	if a.jsonOutput {
		return printJSON(os.Stdout, entities)
	}
	printEntityTable(os.Stdout, entities, columns)
	return nil
}

func (a *app) printEntity(e prtg.Entity, columns []entityColumn) error {
	if a.jsonOutput {
		return printJSON(os.Stdout, e)
	}
	printEntityTable(os.Stdout, []prtg.Entity{e}, columns)
	return nil
}

// printValue writes a single scalar result, keyed when emitting JSON.
func (a *app) printValue(key, value string) error {
	if a.jsonOutput {
		return printJSON(os.Stdout, map[string]string{key: value})
	}
	fmt.Println(value)
	return nil
}

// printMessage confirms a completed action.
func (a *app) printMessage(format string, args ...any) error {
	message := fmt.Sprintf(format, args...)
	if a.jsonOutput {
		return printJSON(os.Stdout, map[string]any{"success": true, "message": message})
	}
	fmt.Println(message)
	return nil
}
