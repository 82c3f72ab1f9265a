package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/file_storage/internal/domain"
)

const TableFiles = "files"

var fileColumns = []string{
	"id",
	"storage_key",
	"bucket",
	"original_name",
	"mime_type",
	"size",
	"upload_id",
	"uploaded_at",
}

type FilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFilesRepository(pool *pgxpool.Pool) *FilesRepository {
	return &FilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveFile inserts the record and fills its generated id and upload date.
func (r *FilesRepository) SaveFile(ctx context.Context, file *domain.File) error {
	const op = "save file"

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableFiles).
		Columns(
			"storage_key",
			"bucket",
			"original_name",
			"mime_type",
			"size",
			"upload_id",
		).
		Values(
			file.StorageKey,
			file.Bucket,
			file.OriginalName,
			file.MimeType,
			file.Size,
			file.UploadID,
		).
		Suffix("RETURNING id, uploaded_at").
		ToSql()
	if err != nil {
		return createQueryError(op, err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&file.ID, &file.UploadedAt); err != nil {
		return scanRowError(op, err)
	}

	return nil
}

func (r *FilesRepository) FileByID(ctx context.Context, id string) (*domain.File, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, domain.ErrInvalidFileID
	}

	const op = "file by id"

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(fileColumns...).
		From(TableFiles).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(op, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(op, err)
	}

	file, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.File])
	if err != nil {
		return nil, collectFileError(op, err)
	}

	return file, nil
}

// Files returns a page of files, newest first, and the total number of files.
func (r *FilesRepository) Files(ctx context.Context, limit, offset uint64) ([]*domain.File, int, error) {
	const op = "list files"

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableFiles).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(op, err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(op, err)
	}

	sql, args, err = r.qb.
		Select(fileColumns...).
		From(TableFiles).
		OrderBy("uploaded_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(op, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(op, err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.File])
	if err != nil {
		return nil, -1, collectFileError(op, err)
	}

	return files, total, nil
}

func (r *FilesRepository) DeleteFile(ctx context.Context, id string) error {
	if err := uuid.Validate(id); err != nil {
		return domain.ErrInvalidFileID
	}

	const op = "delete file"

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableFiles).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(op, err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %q: %w", op, id, domain.ErrFileNotFound)
	}

	return nil
}
