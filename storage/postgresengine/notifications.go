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
	colNotificationID       = "id"
	colNotificationMemberID = "member_id"
	colNotificationMessage  = "message"
	colNotificationDateSent = "date_sent"
)

// InsertNotification records a new in-app message.
func (s Store) InsertNotification(ctx context.Context, notification core.Notification) error {
	sqlQuery, _, toSQLErr := s.builder().
		Insert(s.tableName(tableNotifications)).
		Rows(goqu.Record{
			colNotificationID:       notification.ID.String(),
			colNotificationMemberID: notification.MemberID.String(),
			colNotificationMessage:  notification.Message,
			colNotificationDateSent: notification.DateSent,
		}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableNotifications)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	_, err := s.executeStatement(ctx, tableNotifications, sqlQuery)

	return err
}

// ListNotifications returns all recorded messages, newest first.
func (s Store) ListNotifications(ctx context.Context) ([]core.Notification, error) {
	return s.listNotifications(ctx, nil)
}

// ListNotificationsByMember returns one member's messages, newest first.
func (s Store) ListNotificationsByMember(ctx context.Context, memberID uuid.UUID) ([]core.Notification, error) {
	return s.listNotifications(ctx, goqu.Ex{colNotificationMemberID: memberID.String()})
}

func (s Store) listNotifications(ctx context.Context, where goqu.Ex) ([]core.Notification, error) {
	selectStmt := s.builder().
		From(s.tableName(tableNotifications)).
		Select(colNotificationID, colNotificationMemberID, colNotificationMessage, colNotificationDateSent).
		Order(goqu.I(colNotificationDateSent).Desc())

	if where != nil {
		selectStmt = selectStmt.Where(where)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableNotifications)
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.executeQuery(ctx, tableNotifications, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer s.closeRows(rows)

	return s.scanNotifications(ctx, rows)
}

func (s Store) scanNotifications(ctx context.Context, rows adapters.DBRows) ([]core.Notification, error) {
	notifications := make([]core.Notification, 0)

	for rows.Next() {
		var (
			idRaw       string
			memberIDRaw string
			message     string
			dateSent    time.Time
		)

		if err := rows.Scan(&idRaw, &memberIDRaw, &message, &dateSent); err != nil {
			s.logError(ctx, logMsgScanRowFailed, err, logAttrTable, tableNotifications)
			return nil, errors.Join(ErrScanningRowFailed, err)
		}

		id, idErr := uuid.Parse(idRaw)
		if idErr != nil {
			s.logError(ctx, logMsgScanRowFailed, idErr, logAttrTable, tableNotifications)
			return nil, errors.Join(ErrScanningRowFailed, idErr)
		}

		memberID, memberIDErr := uuid.Parse(memberIDRaw)
		if memberIDErr != nil {
			s.logError(ctx, logMsgScanRowFailed, memberIDErr, logAttrTable, tableNotifications)
			return nil, errors.Join(ErrScanningRowFailed, memberIDErr)
		}

		notifications = append(notifications, core.Notification{
			ID:       id,
			MemberID: memberID,
			Message:  message,
			DateSent: dateSent,
		})
	}

	return notifications, nil
}

// DeleteNotification removes a recorded message. Notifications are otherwise
// immutable; deletion is an explicit operator action.
func (s Store) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	sqlQuery, _, toSQLErr := s.builder().
		Delete(s.tableName(tableNotifications)).
		Where(goqu.Ex{colNotificationID: id.String()}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableNotifications)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableNotifications, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return core.ErrNotificationNotFound
	}

	return nil
}
