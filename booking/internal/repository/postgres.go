package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/court-booking/booking/internal/errs"
	"github.com/Astemirdum/court-booking/booking/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DriverPostgres = "postgresql"

type postgresRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewPostgres(db *pgxpool.Pool, log *zap.Logger) (*postgresRepository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &postgresRepository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

var _ Repository = (*postgresRepository)(nil)

var pgQB = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var pgReservationViewColumns = []string{
	"r.id",
	"r.codigo_unico",
	"u.nome",
	"u.telefone",
	"r.quadra_id",
	"q.nome as quadra_nome",
	"q.local",
	"to_char(r.data_reserva, 'YYYY-MM-DD') as data_reserva",
	"to_char(r.hora_inicio, 'HH24:MI') as hora_inicio",
	"to_char(r.hora_fim, 'HH24:MI') as hora_fim",
	"r.status",
	"r.observacoes",
	"to_char(r.created_at, 'YYYY-MM-DD HH24:MI:SS') as created_at",
	"to_char(r.updated_at, 'YYYY-MM-DD HH24:MI:SS') as updated_at",
}

func (r *postgresRepository) Driver() string {
	return DriverPostgres
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	return errs.Store("ping", r.db.Ping(ctx))
}

func (r *postgresRepository) ListCourts(ctx context.Context) ([]model.Court, error) {
	query, args, err := pgQB.Select("id", "nome", "local", "tipo", "ativa").
		From(courtsTableName).
		Where(sq.Eq{"ativa": true}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.Store("list courts", err)
	}
	defer rows.Close()

	courts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Court])
	if err != nil {
		return nil, errs.Store("list courts", fmt.Errorf("pgx.CollectRows: %w", err))
	}
	return courts, nil
}

func (r *postgresRepository) GetCourt(ctx context.Context, id int64) (model.Court, error) {
	query, args, err := pgQB.Select("id", "nome", "local", "tipo", "ativa").
		From(courtsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Court{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Court{}, errs.Store("get court", err)
	}
	defer rows.Close()

	court, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Court])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Court{}, errs.ErrCourtNotFound
		}
		return model.Court{}, errs.Store("get court", err)
	}
	return court, nil
}

func (r *postgresRepository) TakenSlots(ctx context.Context, date string, courtID int64) ([]string, error) {
	q := pgQB.Select("to_char(hora_inicio, 'HH24:MI')").
		Distinct().
		From(reservationsTableName).
		Where(sq.Expr("data_reserva = ?::date", date)).
		Where(sq.Eq{"status": activeStatuses()})
	if courtID != 0 {
		q = q.Where(sq.Eq{"quadra_id": courtID})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("TakenSlots", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.Store("taken slots", err)
	}
	defer rows.Close()

	slots, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errs.Store("taken slots", err)
	}
	return slots, nil
}

func (r *postgresRepository) SlotTaken(ctx context.Context, courtID int64, date, startTime string) (bool, error) {
	const q = `
select exists(
    select 1 from reservas
    where quadra_id = @quadra_id
      and data_reserva = @data_reserva::date
      and hora_inicio = @hora_inicio::time
      and status = any(@statuses)
)`
	args := pgx.NamedArgs{
		"quadra_id":    courtID,
		"data_reserva": date,
		"hora_inicio":  startTime,
		"statuses":     activeStatuses(),
	}
	var taken bool
	if err := r.db.QueryRow(ctx, q, args).Scan(&taken); err != nil {
		return false, errs.Store("slot taken", err)
	}
	return taken, nil
}

func (r *postgresRepository) UpsertUser(ctx context.Context, nome, telefone string) (int64, error) {
	// the no-op update makes returning yield the existing row
	const q = `
insert into usuarios (nome, telefone)
values (@nome, @telefone)
on conflict (telefone) do update set telefone = excluded.telefone
returning id`
	var id int64
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"nome": nome, "telefone": telefone}).Scan(&id); err != nil {
		return 0, errs.Store("upsert user", err)
	}
	return id, nil
}

func (r *postgresRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `select exists(select 1 from reservas where codigo_unico = $1)`, code).Scan(&exists)
	if err != nil {
		return false, errs.Store("code exists", err)
	}
	return exists, nil
}

func (r *postgresRepository) CreateReservation(ctx context.Context, res model.Reservation) (int64, error) {
	query, args, err := pgQB.Insert(reservationsTableName).
		Columns("codigo_unico", "usuario_id", "quadra_id", "data_reserva", "hora_inicio", "hora_fim", "status", "observacoes").
		Values(
			res.Code,
			res.UserID,
			res.CourtID,
			sq.Expr("?::date", res.Date),
			sq.Expr("?::time", res.StartTime),
			sq.Expr("?::time", res.EndTime),
			string(res.Status),
			res.Observacoes,
		).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if cerr := pgConstraintErr(err); cerr != nil {
			return 0, cerr
		}
		r.log.Error("CreateReservation", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return 0, errs.Store("create reservation", err)
	}
	return id, nil
}

func (r *postgresRepository) ListUserReservations(ctx context.Context, nome, telefone string) ([]model.ReservationView, error) {
	return r.listReservations(ctx, "list user reservations",
		pgReservationsQuery().
			Where(sq.Eq{"u.nome": nome, "u.telefone": telefone}).
			OrderBy("r.data_reserva desc", "r.hora_inicio desc"))
}

func (r *postgresRepository) ListReservations(ctx context.Context) ([]model.ReservationView, error) {
	return r.listReservations(ctx, "list reservations",
		pgReservationsQuery().OrderBy("r.created_at desc", "r.id desc"))
}

func pgReservationsQuery() sq.SelectBuilder {
	return pgQB.Select(pgReservationViewColumns...).
		From(reservationsTableName + " r").
		Join(fmt.Sprintf("%s u on r.usuario_id = u.id", usersTableName)).
		Join(fmt.Sprintf("%s q on r.quadra_id = q.id", courtsTableName))
}

func (r *postgresRepository) listReservations(ctx context.Context, op string, q sq.SelectBuilder) ([]model.ReservationView, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.Store(op, err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ReservationView])
	if err != nil {
		return nil, errs.Store(op, fmt.Errorf("pgx.CollectRows: %w", err))
	}
	return items, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id int64, status model.Status) error {
	const q = `update reservas set status = @status, updated_at = now() where id = @id`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"status": string(status), "id": id})
	if err != nil {
		if cerr := pgConstraintErr(err); cerr != nil {
			return cerr
		}
		return errs.Store("update status", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) DeleteReservation(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `delete from reservas where id = $1`, id)
	if err != nil {
		return errs.Store("delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) CountByStatus(ctx context.Context) (map[model.Status]int64, error) {
	rows, err := r.db.Query(ctx, `select status, count(*) as count from reservas group by status`)
	if err != nil {
		return nil, errs.Store("count by status", err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.StatusCount])
	if err != nil {
		return nil, errs.Store("count by status", err)
	}
	return statusMap(counts), nil
}

func (r *postgresRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `select count(*) from usuarios`).Scan(&n); err != nil {
		return 0, errs.Store("count users", err)
	}
	return n, nil
}

func (r *postgresRepository) CourtUsage(ctx context.Context) ([]model.CourtUsage, error) {
	const q = `
select q.nome, q.local, count(r.id) as total_reservas
from quadras q
left join reservas r on q.id = r.quadra_id
group by q.id, q.nome, q.local
order by total_reservas desc, q.id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, errs.Store("court usage", err)
	}
	defer rows.Close()

	usage, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.CourtUsage])
	if err != nil {
		return nil, errs.Store("court usage", err)
	}
	return usage, nil
}

func pgConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case codeUniqueIndex:
		return errs.ErrDuplicateCode
	case slotUniqueIndex:
		return errs.ErrConflict
	}
	return nil
}
