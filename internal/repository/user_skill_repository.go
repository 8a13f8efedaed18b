package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-swap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserSkillNotFound  = errors.New("skill not found")
	ErrUserSkillForbidden = errors.New("forbidden")
)

const (
	SkillKindTeach = "teach"
	SkillKindLearn = "learn"
)

type UserSkill struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        string
	Name        string
	Category    string
	Level       string
	Description string
}

type UserSkillRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	ListByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]UserSkill, error)
	Create(ctx context.Context, us UserSkill) (UserSkill, error)
	Update(ctx context.Context, us UserSkill) (UserSkill, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

const skillColumns = `id, user_id, kind, name, category, level, description`

// ListByUser returns both lists in insertion order.
func (r *PostgresUserSkillRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM user_skills WHERE user_id = $1 ORDER BY position ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkills(rows)
}

func (r *PostgresUserSkillRepository) ListByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]UserSkill, error) {
	out := make(map[uuid.UUID][]UserSkill, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM user_skills WHERE user_id = ANY($1) ORDER BY user_id, position ASC`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills, err := collectSkills(rows)
	if err != nil {
		return nil, err
	}
	for _, s := range skills {
		out[s.UserID] = append(out[s.UserID], s)
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) Create(ctx context.Context, us UserSkill) (UserSkill, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills (id, user_id, kind, name, category, level, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		us.ID, us.UserID, us.Kind, us.Name, us.Category, us.Level, us.Description,
	)
	if err != nil {
		return UserSkill{}, err
	}
	return r.findByID(ctx, us.ID, us.UserID)
}

func (r *PostgresUserSkillRepository) Update(ctx context.Context, us UserSkill) (UserSkill, error) {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE user_skills
		 SET name = $1, category = $2, level = $3, description = $4
		 WHERE id = $5 AND user_id = $6`,
		us.Name, us.Category, us.Level, us.Description, us.ID, us.UserID,
	)
	if err != nil {
		return UserSkill{}, err
	}
	if rowsAffected == 0 {
		return UserSkill{}, ErrUserSkillNotFound
	}
	return r.findByID(ctx, us.ID, us.UserID)
}

func (r *PostgresUserSkillRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	var owner uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT user_id FROM user_skills WHERE id = $1`, id)
	if err := row.Scan(&owner); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return ErrUserSkillNotFound
		}
		return err
	}
	if owner != userID {
		return ErrUserSkillForbidden
	}

	_, err := r.db.Exec(ctx, `DELETE FROM user_skills WHERE id = $1`, id)
	return err
}

func (r *PostgresUserSkillRepository) findByID(ctx context.Context, id, userID uuid.UUID) (UserSkill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM user_skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	var us UserSkill
	if err := row.Scan(&us.ID, &us.UserID, &us.Kind, &us.Name, &us.Category, &us.Level, &us.Description); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return UserSkill{}, ErrUserSkillNotFound
		}
		return UserSkill{}, err
	}
	return us, nil
}

func collectSkills(rows database.Rows) ([]UserSkill, error) {
	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.Kind, &us.Name, &us.Category, &us.Level, &us.Description); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
