package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Astemirdum/court-booking/booking/internal/errs"
	"github.com/Astemirdum/court-booking/booking/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const DriverSQLite = "sqlite"

type sqliteRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewSQLite(db *sqlx.DB, log *zap.Logger) (*sqliteRepository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	return &sqliteRepository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

var _ Repository = (*sqliteRepository)(nil)

var liteQB = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var liteReservationViewColumns = []string{
	"r.id",
	"r.codigo_unico",
	"u.nome",
	"u.telefone",
	"r.quadra_id",
	"q.nome as quadra_nome",
	"q.local",
	"r.data_reserva",
	"r.hora_inicio",
	"r.hora_fim",
	"r.status",
	"r.observacoes",
	"strftime('%Y-%m-%d %H:%M:%S', r.created_at) as created_at",
	"strftime('%Y-%m-%d %H:%M:%S', r.updated_at) as updated_at",
}

func (r *sqliteRepository) Driver() string {
	return DriverSQLite
}

func (r *sqliteRepository) Ping(ctx context.Context) error {
	return errs.Store("ping", r.db.PingContext(ctx))
}

func (r *sqliteRepository) ListCourts(ctx context.Context) ([]model.Court, error) {
	query, args, err := liteQB.Select("id", "nome", "local", "tipo", "ativa").
		From(courtsTableName).
		Where(sq.Eq{"ativa": 1}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var courts []model.Court
	if err := r.db.SelectContext(ctx, &courts, query, args...); err != nil {
		return nil, errs.Store("list courts", err)
	}
	return courts, nil
}

func (r *sqliteRepository) GetCourt(ctx context.Context, id int64) (model.Court, error) {
	var court model.Court
	err := r.db.GetContext(ctx, &court,
		`select id, nome, local, tipo, ativa from quadras where id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Court{}, errs.ErrCourtNotFound
		}
		return model.Court{}, errs.Store("get court", err)
	}
	return court, nil
}

func (r *sqliteRepository) TakenSlots(ctx context.Context, date string, courtID int64) ([]string, error) {
	q := liteQB.Select("hora_inicio").
		Distinct().
		From(reservationsTableName).
		Where(sq.Eq{"data_reserva": date, "status": activeStatuses()})
	if courtID != 0 {
		q = q.Where(sq.Eq{"quadra_id": courtID})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var slots []string
	if err := r.db.SelectContext(ctx, &slots, query, args...); err != nil {
		return nil, errs.Store("taken slots", err)
	}
	return slots, nil
}

func (r *sqliteRepository) SlotTaken(ctx context.Context, courtID int64, date, startTime string) (bool, error) {
	sub := liteQB.Select("1").
		From(reservationsTableName).
		Where(sq.Eq{
			"quadra_id":    courtID,
			"data_reserva": date,
			"hora_inicio":  startTime,
			"status":       activeStatuses(),
		})
	query, args, err := sub.Prefix("select exists(").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}
	var taken bool
	if err := r.db.GetContext(ctx, &taken, query, args...); err != nil {
		return false, errs.Store("slot taken", err)
	}
	return taken, nil
}

func (r *sqliteRepository) UpsertUser(ctx context.Context, nome, telefone string) (int64, error) {
	const q = `
insert into usuarios (nome, telefone)
values (?, ?)
on conflict (telefone) do update set telefone = excluded.telefone
returning id`
	var id int64
	if err := r.db.GetContext(ctx, &id, q, nome, telefone); err != nil {
		return 0, errs.Store("upsert user", err)
	}
	return id, nil
}

func (r *sqliteRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `select exists(select 1 from reservas where codigo_unico = ?)`, code)
	if err != nil {
		return false, errs.Store("code exists", err)
	}
	return exists, nil
}

func (r *sqliteRepository) CreateReservation(ctx context.Context, res model.Reservation) (int64, error) {
	query, args, err := liteQB.Insert(reservationsTableName).
		Columns("codigo_unico", "usuario_id", "quadra_id", "data_reserva", "hora_inicio", "hora_fim", "status", "observacoes").
		Values(res.Code, res.UserID, res.CourtID, res.Date, res.StartTime, res.EndTime, string(res.Status), res.Observacoes).
		ToSql()
	if err != nil {
		return 0, err
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if cerr := liteConstraintErr(err); cerr != nil {
			return 0, cerr
		}
		r.log.Error("CreateReservation", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return 0, errs.Store("create reservation", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, errs.Store("create reservation", err)
	}
	return id, nil
}

func (r *sqliteRepository) ListUserReservations(ctx context.Context, nome, telefone string) ([]model.ReservationView, error) {
	return r.listReservations(ctx, "list user reservations",
		liteReservationsQuery().
			Where(sq.Eq{"u.nome": nome, "u.telefone": telefone}).
			OrderBy("r.data_reserva desc", "r.hora_inicio desc"))
}

func (r *sqliteRepository) ListReservations(ctx context.Context) ([]model.ReservationView, error) {
	return r.listReservations(ctx, "list reservations",
		liteReservationsQuery().OrderBy("r.created_at desc", "r.id desc"))
}

func liteReservationsQuery() sq.SelectBuilder {
	return liteQB.Select(liteReservationViewColumns...).
		From(reservationsTableName + " r").
		Join(fmt.Sprintf("%s u on r.usuario_id = u.id", usersTableName)).
		Join(fmt.Sprintf("%s q on r.quadra_id = q.id", courtsTableName))
}

func (r *sqliteRepository) listReservations(ctx context.Context, op string, q sq.SelectBuilder) ([]model.ReservationView, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.ReservationView, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, errs.Store(op, err)
	}
	return items, nil
}

func (r *sqliteRepository) UpdateStatus(ctx context.Context, id int64, status model.Status) error {
	result, err := r.db.ExecContext(ctx,
		`update reservas set status = ?, updated_at = current_timestamp where id = ?`, string(status), id)
	if err != nil {
		if cerr := liteConstraintErr(err); cerr != nil {
			return cerr
		}
		return errs.Store("update status", err)
	}
	return affectedOne(result, "update status")
}

func (r *sqliteRepository) DeleteReservation(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `delete from reservas where id = ?`, id)
	if err != nil {
		return errs.Store("delete reservation", err)
	}
	return affectedOne(result, "delete reservation")
}

func (r *sqliteRepository) CountByStatus(ctx context.Context) (map[model.Status]int64, error) {
	var counts []model.StatusCount
	if err := r.db.SelectContext(ctx, &counts, `select status, count(*) as count from reservas group by status`); err != nil {
		return nil, errs.Store("count by status", err)
	}
	return statusMap(counts), nil
}

func (r *sqliteRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `select count(*) from usuarios`); err != nil {
		return 0, errs.Store("count users", err)
	}
	return n, nil
}

func (r *sqliteRepository) CourtUsage(ctx context.Context) ([]model.CourtUsage, error) {
	const q = `
select q.nome, q.local, count(r.id) as total_reservas
from quadras q
left join reservas r on q.id = r.quadra_id
group by q.id, q.nome, q.local
order by total_reservas desc, q.id`
	var usage []model.CourtUsage
	if err := r.db.SelectContext(ctx, &usage, q); err != nil {
		return nil, errs.Store("court usage", err)
	}
	return usage, nil
}

func affectedOne(result sql.Result, op string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return errs.Store(op, err)
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// liteConstraintErr maps unique violations; SQLite names the columns, not the index.
func liteConstraintErr(err error) error {
	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) || liteErr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return nil
	}
	msg := liteErr.Error()
	switch {
	case strings.Contains(msg, "reservas.codigo_unico"):
		return errs.ErrDuplicateCode
	case strings.Contains(msg, "reservas.quadra_id"):
		return errs.ErrConflict
	}
	return nil
}
