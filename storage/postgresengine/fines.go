package postgresengine

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/storage/postgresengine/internal/adapters"
)

const (
	colFineID         = "id"
	colFineCreatedSeq = "created_seq"
	colFineMemberID   = "member_id"
	colFineAmount     = "amount"
	colFineStatus     = "status"
	colFineDate       = "transaction_date"
)

// InsertFine inserts a new fine.
func (s Store) InsertFine(ctx context.Context, fine core.Fine) error {
	sqlQuery, _, toSQLErr := s.builder().
		Insert(s.tableName(tableFines)).
		Rows(goqu.Record{
			colFineID:       fine.ID.String(),
			colFineMemberID: fine.MemberID.String(),
			colFineAmount:   fine.Amount,
			colFineStatus:   fine.Status.String(),
			colFineDate:     fine.TransactionDate,
		}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableFines)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	_, err := s.executeStatement(ctx, tableFines, sqlQuery)

	return err
}

// GetFineByID fetches one fine by id.
func (s Store) GetFineByID(ctx context.Context, id uuid.UUID) (core.Fine, error) {
	fines, err := s.listFines(ctx, goqu.Ex{colFineID: id.String()})
	if err != nil {
		return core.Fine{}, err
	}

	if len(fines) == 0 {
		return core.Fine{}, core.ErrFineNotFound
	}

	return fines[0], nil
}

// ListFines returns all fines in creation order.
func (s Store) ListFines(ctx context.Context) ([]core.Fine, error) {
	return s.listFines(ctx, nil)
}

// ListFinesByMember returns a member's fines in creation order.
// The AddFineForMember top-up semantics depend on this ordering.
func (s Store) ListFinesByMember(ctx context.Context, memberID uuid.UUID) ([]core.Fine, error) {
	return s.listFines(ctx, goqu.Ex{colFineMemberID: memberID.String()})
}

func (s Store) listFines(ctx context.Context, where goqu.Ex) ([]core.Fine, error) {
	selectStmt := s.builder().
		From(s.tableName(tableFines)).
		Select(colFineID, colFineMemberID, colFineAmount, colFineStatus, colFineDate).
		Order(goqu.I(colFineCreatedSeq).Asc())

	if where != nil {
		selectStmt = selectStmt.Where(where)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableFines)
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.executeQuery(ctx, tableFines, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer s.closeRows(rows)

	return s.scanFines(ctx, rows)
}

func (s Store) scanFines(ctx context.Context, rows adapters.DBRows) ([]core.Fine, error) {
	fines := make([]core.Fine, 0)

	for rows.Next() {
		var (
			idRaw       string
			memberIDRaw string
			amount      int64
			statusRaw   string
			date        time.Time
		)

		if err := rows.Scan(&idRaw, &memberIDRaw, &amount, &statusRaw, &date); err != nil {
			s.logError(ctx, logMsgScanRowFailed, err, logAttrTable, tableFines)
			return nil, errors.Join(ErrScanningRowFailed, err)
		}

		id, idErr := uuid.Parse(idRaw)
		if idErr != nil {
			s.logError(ctx, logMsgScanRowFailed, idErr, logAttrTable, tableFines)
			return nil, errors.Join(ErrScanningRowFailed, idErr)
		}

		memberID, memberIDErr := uuid.Parse(memberIDRaw)
		if memberIDErr != nil {
			s.logError(ctx, logMsgScanRowFailed, memberIDErr, logAttrTable, tableFines)
			return nil, errors.Join(ErrScanningRowFailed, memberIDErr)
		}

		status, statusErr := core.ParseFineStatus(statusRaw)
		if statusErr != nil {
			s.logError(ctx, logMsgScanRowFailed, statusErr, logAttrTable, tableFines)
			return nil, errors.Join(ErrScanningRowFailed, statusErr)
		}

		fines = append(fines, core.Fine{
			ID:              id,
			MemberID:        memberID,
			Amount:          amount,
			Status:          status,
			TransactionDate: date,
		})
	}

	return fines, nil
}

// UpdateFine overwrites a fine's amount, status and date.
func (s Store) UpdateFine(ctx context.Context, fine core.Fine) error {
	sqlQuery, _, toSQLErr := s.builder().
		Update(s.tableName(tableFines)).
		Set(goqu.Record{
			colFineAmount: fine.Amount,
			colFineStatus: fine.Status.String(),
			colFineDate:   fine.TransactionDate,
		}).
		Where(goqu.Ex{colFineID: fine.ID.String()}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableFines)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableFines, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return core.ErrFineNotFound
	}

	return nil
}

// DeleteFine removes a fine row.
func (s Store) DeleteFine(ctx context.Context, id uuid.UUID) error {
	sqlQuery, _, toSQLErr := s.builder().
		Delete(s.tableName(tableFines)).
		Where(goqu.Ex{colFineID: id.String()}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableFines)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableFines, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return core.ErrFineNotFound
	}

	return nil
}
