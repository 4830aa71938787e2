/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Tabulate Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package protoloader loads textproto data into tables with dynamic schema
// discovery. A pre-populated proto registry supplies the message
// descriptors; nested repeated messages are denormalized into flat rows,
// and numeric proto fields become numeric columns so they can serve as
// tally weights.
package protoloader

import (
	"fmt"
	"os"
	"strings"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/google/tabulate/core/columns"
	"github.com/google/tabulate/core/tables"
)

// Loader parses textproto data into tables using a pre-populated registry.
type Loader struct {
	registry *protoregistry.Files
}

// NewLoader creates a new Loader with the given proto registry.
// The registry should be pre-populated with all required message descriptors.
func NewLoader(registry *protoregistry.Files) *Loader {
	return &Loader{
		registry: registry,
	}
}

// ParseTextproto parses textproto bytes into a dynamic protobuf message of
// the given fully qualified message name.
func (l *Loader) ParseTextproto(data []byte, messageName string) (protoreflect.Message, error) {
	desc, err := l.registry.FindDescriptorByName(protoreflect.FullName(messageName))
	if err != nil {
		return nil, fmt.Errorf("message %q not found in registry: %w", messageName, err)
	}

	msgDesc, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%q is not a message type", messageName)
	}

	msg := dynamicpb.NewMessage(msgDesc)

	opts := prototext.UnmarshalOptions{
		Resolver: l,
	}
	if err := opts.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("failed to parse textproto: %w", err)
	}

	return msg.ProtoReflect(), nil
}

// ParseTextprotoFile reads and parses a textproto file.
func (l *Loader) ParseTextprotoFile(path string, messageName string) (protoreflect.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read textproto file: %w", err)
	}
	return l.ParseTextproto(data, messageName)
}

// FindMessageByName implements protoregistry.MessageTypeResolver
func (l *Loader) FindMessageByName(name protoreflect.FullName) (protoreflect.MessageType, error) {
	desc, err := l.registry.FindDescriptorByName(name)
	if err != nil {
		return nil, err
	}
	msgDesc, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%q is not a message type", name)
	}
	return dynamicpb.NewMessageType(msgDesc), nil
}

// FindMessageByURL implements protoregistry.MessageTypeResolver
func (l *Loader) FindMessageByURL(url string) (protoreflect.MessageType, error) {
	name := protoreflect.FullName(strings.TrimPrefix(url, "type.googleapis.com/"))
	return l.FindMessageByName(name)
}

// FindExtensionByName implements protoregistry.ExtensionTypeResolver
func (l *Loader) FindExtensionByName(name protoreflect.FullName) (protoreflect.ExtensionType, error) {
	return nil, protoregistry.NotFound
}

// FindExtensionByNumber implements protoregistry.ExtensionTypeResolver
func (l *Loader) FindExtensionByNumber(message protoreflect.FullName, field protoreflect.FieldNumber) (protoreflect.ExtensionType, error) {
	return nil, protoregistry.NotFound
}

// HierarchyLevel represents one level in a linear message hierarchy.
type HierarchyLevel struct {
	// FieldDesc is the repeated message field leading to the next level (nil for leaf)
	FieldDesc protoreflect.FieldDescriptor
	// ScalarFields are non-message, non-repeated fields at this level
	ScalarFields []protoreflect.FieldDescriptor
}

// FindLinearHierarchy walks a message descriptor to find a linear chain of
// nested repeated messages. Returns the hierarchy levels from root to leaf.
func (l *Loader) FindLinearHierarchy(msgDesc protoreflect.MessageDescriptor) []HierarchyLevel {
	var levels []HierarchyLevel
	current := msgDesc

	for current != nil {
		level := HierarchyLevel{}
		var nextLevel protoreflect.MessageDescriptor

		fields := current.Fields()
		for i := 0; i < fields.Len(); i++ {
			fd := fields.Get(i)

			if fd.Kind() == protoreflect.MessageKind && fd.Cardinality() == protoreflect.Repeated {
				level.FieldDesc = fd
				nextLevel = fd.Message()
			} else if fd.Kind() != protoreflect.MessageKind {
				level.ScalarFields = append(level.ScalarFields, fd)
			}
		}

		levels = append(levels, level)
		current = nextLevel
	}

	return levels
}

// RowBuilder accumulates denormalized rows from a hierarchical message.
// Each column remembers the proto field it came from so the table builder
// can pick a matching column type.
type RowBuilder struct {
	columns        []string
	fields         map[string]protoreflect.FieldDescriptor
	rows           [][]string
	current        map[string]string
	columnsByLevel [][]string
}

// newRowBuilder creates a new RowBuilder with columns derived from hierarchy levels.
func newRowBuilder(hierarchy []HierarchyLevel) *RowBuilder {
	rb := &RowBuilder{
		fields:         make(map[string]protoreflect.FieldDescriptor),
		current:        make(map[string]string),
		columnsByLevel: make([][]string, len(hierarchy)),
	}

	for i, level := range hierarchy {
		for _, fd := range level.ScalarFields {
			colName := string(fd.Name())
			rb.columns = append(rb.columns, colName)
			rb.fields[colName] = fd
			rb.columnsByLevel[i] = append(rb.columnsByLevel[i], colName)
		}
	}

	return rb
}

// clearFromLevel clears all column values at and below the given hierarchy
// level. Cleared numeric cells end up null in the table.
func (rb *RowBuilder) clearFromLevel(level int) {
	for i := level; i < len(rb.columnsByLevel); i++ {
		for _, col := range rb.columnsByLevel[i] {
			rb.current[col] = ""
		}
	}
}

// emitRow adds the current row state to the rows list.
func (rb *RowBuilder) emitRow() {
	row := make([]string, len(rb.columns))
	for i, col := range rb.columns {
		row[i] = rb.current[col]
	}
	rb.rows = append(rb.rows, row)
}

// ExtractRows walks a message hierarchy and extracts denormalized rows.
func (l *Loader) ExtractRows(msg protoreflect.Message, hierarchy []HierarchyLevel) *RowBuilder {
	rb := newRowBuilder(hierarchy)
	l.walkHierarchy(msg, hierarchy, 0, rb)
	return rb
}

func (l *Loader) walkHierarchy(msg protoreflect.Message, hierarchy []HierarchyLevel, depth int, rb *RowBuilder) {
	if depth >= len(hierarchy) {
		return
	}

	level := hierarchy[depth]

	for _, fd := range level.ScalarFields {
		val := msg.Get(fd)
		rb.current[string(fd.Name())] = formatValue(val, fd)
	}

	if level.FieldDesc == nil || depth == len(hierarchy)-1 {
		rb.emitRow()
		return
	}

	list := msg.Get(level.FieldDesc).List()
	if list.Len() == 0 {
		// No children: emit the parent's values with null child cells.
		rb.clearFromLevel(depth + 1)
		rb.emitRow()
		return
	}

	for i := 0; i < list.Len(); i++ {
		// Clear child fields before each iteration to avoid stale data
		rb.clearFromLevel(depth + 1)
		childMsg := list.Get(i).Message()
		l.walkHierarchy(childMsg, hierarchy, depth+1, rb)
	}
}

// formatValue converts a protoreflect.Value to its string representation.
func formatValue(val protoreflect.Value, fd protoreflect.FieldDescriptor) string {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		if val.Bool() {
			return "true"
		}
		return "false"
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return fmt.Sprintf("%d", val.Int())
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return fmt.Sprintf("%d", val.Uint())
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		return columns.FormatFloat64(val.Float())
	case protoreflect.StringKind:
		return val.String()
	case protoreflect.BytesKind:
		return string(val.Bytes())
	case protoreflect.EnumKind:
		enumVal := fd.Enum().Values().ByNumber(val.Enum())
		if enumVal != nil {
			return string(enumVal.Name())
		}
		return fmt.Sprintf("%d", val.Enum())
	default:
		return val.String()
	}
}

// CreateDataTable builds a table from extracted rows, choosing each
// column's type from the proto field it came from.
func (l *Loader) CreateDataTable(rb *RowBuilder) (*tables.DataTable, error) {
	table := tables.NewDataTable()

	for i, colName := range rb.columns {
		col := newColumnForField(rb.fields[colName], colName)
		for _, row := range rb.rows {
			if err := appendCell(col, row[i]); err != nil {
				return nil, fmt.Errorf("column %q: %w", colName, err)
			}
		}
		table.AddColumn(col)
	}

	return table, nil
}

// newColumnForField maps a proto field kind to a column type. 64-bit
// unsigned fields get a float64 column since there is no unsigned storage.
func newColumnForField(fd protoreflect.FieldDescriptor, name string) columns.IDataColumn {
	def := columns.NewColumnDef(name, name)
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return columns.NewBoolColumn(def)
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return columns.NewInt64Column(def)
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return columns.NewUint32Column(def)
	case protoreflect.FloatKind, protoreflect.DoubleKind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return columns.NewFloat64Column(def)
	default:
		return columns.NewStringColumn(def)
	}
}

// appendCell appends a formatted cell value to a typed column. Empty cells
// in numeric columns become nulls; bool columns default to false.
func appendCell(col columns.IDataColumn, value string) error {
	switch c := col.(type) {
	case *columns.StringColumn:
		c.Append(value)
	case *columns.BoolColumn:
		b, err := columns.ParseBool(value)
		if err != nil {
			b = false
		}
		c.Append(b)
	case *columns.Int64Column:
		return c.AppendString(value)
	case *columns.Uint32Column:
		return c.AppendString(value)
	case *columns.Float64Column:
		return c.AppendString(value)
	default:
		return fmt.Errorf("unsupported column type %T", col)
	}
	return nil
}

// LoadTextprotoAsTable parses textproto bytes and returns a denormalized
// DataTable. The messageName should be the fully qualified protobuf message
// name (e.g. "mypackage.OrderBook").
func (l *Loader) LoadTextprotoAsTable(data []byte, messageName string) (*tables.DataTable, error) {
	msg, err := l.ParseTextproto(data, messageName)
	if err != nil {
		return nil, err
	}

	hierarchy := l.FindLinearHierarchy(msg.Descriptor())
	rb := l.ExtractRows(msg, hierarchy)

	if len(rb.rows) == 0 {
		return nil, fmt.Errorf("no rows extracted from textproto")
	}

	return l.CreateDataTable(rb)
}

// LoadTextprotoFileAsTable reads a textproto file and returns a
// denormalized DataTable.
func (l *Loader) LoadTextprotoFileAsTable(path, messageName string) (*tables.DataTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read textproto file: %w", err)
	}
	return l.LoadTextprotoAsTable(data, messageName)
}

// GetRegisteredMessages returns all message names registered in the loader.
func (l *Loader) GetRegisteredMessages() []string {
	var messages []string
	l.registry.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		msgs := fd.Messages()
		for i := 0; i < msgs.Len(); i++ {
			messages = append(messages, string(msgs.Get(i).FullName()))
		}
		return true
	})
	return messages
}
