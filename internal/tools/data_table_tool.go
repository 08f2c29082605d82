// In file: internal/tools/data_table_tool.go
package tools

import "agent-ui-service/internal/schema"

const dataTableToolName = "create_data_table"

// DataTableTool builds a table component for tabular or structured data.
type DataTableTool struct{}

var _ ComponentTool = (*DataTableTool)(nil)

func NewDataTableTool() *DataTableTool {
	return &DataTableTool{}
}

func (t *DataTableTool) Definition() Tool {
	return NewFunctionTool(
		dataTableToolName,
		"Create a data table component when the query asks for tabular data, lists, or "+
			"structured records. Derive the columns and rows from the answer.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"title": {
					Type:        "string",
					Description: "Table title",
				},
				"columns": {
					Type:        "array",
					Description: "Table column definitions",
					Items: &JSONSchema{
						Type: "object",
						Properties: map[string]*JSONSchema{
							"key":      {Type: "string", Description: "Column identifier"},
							"label":    {Type: "string", Description: "Column display name"},
							"sortable": {Type: "boolean", Description: "Whether the column is sortable"},
						},
						Required: []string{"key", "label"},
					},
				},
				"rows": {
					Type:        "array",
					Description: "Row data as objects keyed by column key",
					Items:       &JSONSchema{Type: "object"},
				},
				"searchable": {
					Type:        "boolean",
					Description: "Whether the table is searchable",
				},
			},
			Required: []string{"title", "columns", "rows"},
		},
	)
}

func (t *DataTableTool) Create(args map[string]any) (schema.Component, error) {
	title := stringArg(args, "title")
	if title == "" {
		return nil, &MissingParameterError{Tool: dataTableToolName, Param: "title"}
	}

	rawColumns, _ := args["columns"].([]any)
	if len(rawColumns) == 0 {
		return nil, &MissingParameterError{Tool: dataTableToolName, Param: "columns"}
	}
	columns := make([]schema.TableColumn, 0, len(rawColumns))
	for _, raw := range rawColumns {
		col, _ := raw.(map[string]any)
		key := stringArg(col, "key")
		if key == "" {
			return nil, &MissingParameterError{Tool: dataTableToolName, Param: "columns.key"}
		}
		label := stringArg(col, "label")
		if label == "" {
			return nil, &MissingParameterError{Tool: dataTableToolName, Param: "columns.label"}
		}
		columns = append(columns, schema.TableColumn{
			Key:      key,
			Label:    label,
			Sortable: boolArg(col, "sortable", true),
		})
	}

	rawRows, ok := args["rows"].([]any)
	if !ok {
		return nil, &MissingParameterError{Tool: dataTableToolName, Param: "rows"}
	}
	rows := make([]schema.TableRow, 0, len(rawRows))
	for _, raw := range rawRows {
		if data, ok := raw.(map[string]any); ok {
			rows = append(rows, schema.TableRow{Data: data})
		}
	}

	table := schema.NewDataTable(title, columns, rows)
	table.Searchable = boolArg(args, "searchable", true)
	return table, nil
}

func (t *DataTableTool) Execute(arguments string) (string, error) {
	return executeComponent(t, arguments)
}
