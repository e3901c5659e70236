package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/export"
	"github.com/castlemilk/cuentas/internal/statement"
	"github.com/castlemilk/cuentas/internal/store"
)

// maxStatementBytes bounds the PDF accepted by ImportStatement.
const maxStatementBytes = 10 << 20

// SetExportWriter sets where movement exports are stored.
func (s *FinanceService) SetExportWriter(w export.ObjectWriter) {
	s.exportWriter = w
}

// ExportMovements renders the caller's movements as CSV, oldest first. When
// a bucket is configured the file is also stored there.
func (s *FinanceService) ExportMovements(ctx context.Context, req *connect.Request[v1.ExportMovementsRequest]) (*connect.Response[v1.ExportMovementsResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg
	if msg.Start != nil && msg.End != nil && msg.End.Before(*msg.Start) {
		return nil, invalidArgument("end is before start")
	}

	movements, err := s.listAllMovements(ctx, claims.UID, store.MovementFilter{Start: msg.Start, End: msg.End})
	if err != nil {
		return nil, auth.WrapStoreError("list movements", err)
	}
	sortMovementsDesc(movements)
	slices.Reverse(movements)

	data, err := export.MovementsCSV(movements)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("render csv: %w", err))
	}

	resp := &v1.ExportMovementsResponse{CSV: data, Count: int32(len(movements))}
	if s.exportWriter != nil {
		name := export.ObjectName(claims.UID, s.now())
		if err := s.exportWriter.WriteObject(ctx, name, "text/csv", data); err != nil {
			return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("store export: %w", err))
		}
		resp.ObjectName = name
	}

	return connect.NewResponse(resp), nil
}

// ImportStatement reads a card statement PDF and previews one entry per line
// that carries an amount. Nothing is stored.
func (s *FinanceService) ImportStatement(ctx context.Context, req *connect.Request[v1.ImportStatementRequest]) (*connect.Response[v1.ImportStatementResponse], error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	if len(req.Msg.PDF) == 0 {
		return nil, invalidArgument("pdf is required")
	}
	if len(req.Msg.PDF) > maxStatementBytes {
		return nil, invalidArgument("pdf exceeds %d bytes", maxStatementBytes)
	}

	result, err := s.importer.Import(req.Msg.PDF, s.localNow())
	if err != nil {
		if errors.Is(err, statement.ErrNoText) {
			return nil, connect.NewError(connect.CodeFailedPrecondition,
				fmt.Errorf("statement has no text layer; scanned statements are not supported"))
		}
		return nil, invalidArgument("read statement: %v", err)
	}

	entries := make([]v1.ParsedEntry, 0, len(result.Entries))
	for _, tx := range result.Entries {
		entries = append(entries, toParsedEntry(tx))
	}

	s.reqLog(ctx).Info().
		Int("entries", len(entries)).
		Int("skipped", result.Skipped).
		Msg("statement imported")

	return connect.NewResponse(&v1.ImportStatementResponse{
		Entries: entries,
		Skipped: int32(result.Skipped),
	}), nil
}
