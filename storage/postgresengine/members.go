package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/storage/postgresengine/internal/adapters"
)

const (
	colMemberID      = "id"
	colMemberName    = "name"
	colMemberEmail   = "email"
	colMemberPhone   = "phone"
	colMemberAddress = "address"
	colMemberStatus  = "membership_status"
)

// InsertMember inserts a new member account.
// A unique-constraint violation on the email maps to core.ErrDuplicateEmail.
func (s Store) InsertMember(ctx context.Context, member core.Member) error {
	sqlQuery, _, toSQLErr := s.builder().
		Insert(s.tableName(tableMembers)).
		Rows(goqu.Record{
			colMemberID:      member.ID.String(),
			colMemberName:    member.Name,
			colMemberEmail:   member.Email,
			colMemberPhone:   member.Phone,
			colMemberAddress: member.Address,
			colMemberStatus:  member.Status.String(),
		}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableMembers)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	if _, err := s.executeStatement(ctx, tableMembers, sqlQuery); err != nil {
		if isUniqueViolation(err) {
			return core.ErrDuplicateEmail
		}

		return err
	}

	return nil
}

// GetMemberByID fetches one member account by id.
func (s Store) GetMemberByID(ctx context.Context, id uuid.UUID) (core.Member, error) {
	return s.getMember(ctx, goqu.Ex{colMemberID: id.String()})
}

// GetMemberByEmail fetches one member account by email.
func (s Store) GetMemberByEmail(ctx context.Context, email string) (core.Member, error) {
	return s.getMember(ctx, goqu.Ex{colMemberEmail: email})
}

func (s Store) getMember(ctx context.Context, where goqu.Ex) (core.Member, error) {
	members, err := s.listMembers(ctx, where)
	if err != nil {
		return core.Member{}, err
	}

	if len(members) == 0 {
		return core.Member{}, core.ErrMemberNotFound
	}

	return members[0], nil
}

// ListMembers returns all member accounts ordered by name.
func (s Store) ListMembers(ctx context.Context) ([]core.Member, error) {
	return s.listMembers(ctx, nil)
}

func (s Store) listMembers(ctx context.Context, where goqu.Ex) ([]core.Member, error) {
	selectStmt := s.builder().
		From(s.tableName(tableMembers)).
		Select(colMemberID, colMemberName, colMemberEmail, colMemberPhone, colMemberAddress, colMemberStatus).
		Order(goqu.I(colMemberName).Asc())

	if where != nil {
		selectStmt = selectStmt.Where(where)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableMembers)
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.executeQuery(ctx, tableMembers, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer s.closeRows(rows)

	return s.scanMembers(ctx, rows)
}

func (s Store) scanMembers(ctx context.Context, rows adapters.DBRows) ([]core.Member, error) {
	members := make([]core.Member, 0)

	for rows.Next() {
		var (
			idRaw     string
			statusRaw string
			member    core.Member
		)

		if err := rows.Scan(&idRaw, &member.Name, &member.Email, &member.Phone, &member.Address, &statusRaw); err != nil {
			s.logError(ctx, logMsgScanRowFailed, err, logAttrTable, tableMembers)
			return nil, errors.Join(ErrScanningRowFailed, err)
		}

		id, parseErr := uuid.Parse(idRaw)
		if parseErr != nil {
			s.logError(ctx, logMsgScanRowFailed, parseErr, logAttrTable, tableMembers)
			return nil, errors.Join(ErrScanningRowFailed, parseErr)
		}

		status, statusErr := core.ParseMembershipStatus(statusRaw)
		if statusErr != nil {
			s.logError(ctx, logMsgScanRowFailed, statusErr, logAttrTable, tableMembers)
			return nil, errors.Join(ErrScanningRowFailed, statusErr)
		}

		member.ID = id
		member.Status = status
		members = append(members, member)
	}

	return members, nil
}

// UpdateMember overwrites a member's profile attributes and status.
func (s Store) UpdateMember(ctx context.Context, member core.Member) error {
	sqlQuery, _, toSQLErr := s.builder().
		Update(s.tableName(tableMembers)).
		Set(goqu.Record{
			colMemberName:    member.Name,
			colMemberEmail:   member.Email,
			colMemberPhone:   member.Phone,
			colMemberAddress: member.Address,
			colMemberStatus:  member.Status.String(),
		}).
		Where(goqu.Ex{colMemberID: member.ID.String()}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableMembers)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableMembers, sqlQuery)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrDuplicateEmail
		}

		return err
	}

	if rowsAffected == 0 {
		return core.ErrMemberNotFound
	}

	return nil
}

// UpdateMemberStatus persists a membership status transition.
func (s Store) UpdateMemberStatus(ctx context.Context, id uuid.UUID, status core.MembershipStatus) error {
	sqlQuery, _, toSQLErr := s.builder().
		Update(s.tableName(tableMembers)).
		Set(goqu.Record{colMemberStatus: status.String()}).
		Where(goqu.Ex{colMemberID: id.String()}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableMembers)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableMembers, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return core.ErrMemberNotFound
	}

	return nil
}

// DeleteMember removes a member account.
func (s Store) DeleteMember(ctx context.Context, id uuid.UUID) error {
	sqlQuery, _, toSQLErr := s.builder().
		Delete(s.tableName(tableMembers)).
		Where(goqu.Ex{colMemberID: id.String()}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableMembers)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableMembers, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return core.ErrMemberNotFound
	}

	return nil
}
