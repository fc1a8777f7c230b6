package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Catalog queries.
const (
	queryUpsertProduct = `
		INSERT INTO inventory (
			name, category, type, quantity, image_url, updated_at
		) VALUES (
			@name, @category, @type, @quantity, @image_url, now()
		)
		ON CONFLICT (name) DO UPDATE SET
			category = EXCLUDED.category,
			type = EXCLUDED.type,
			quantity = EXCLUDED.quantity,
			image_url = EXCLUDED.image_url,
			updated_at = now()
		RETURNING id, updated_at`

	queryGetProduct = `
		SELECT id, name, category, type, quantity, image_url, updated_at
		FROM inventory
		WHERE id = $1`

	querySnapshotProducts = `
		SELECT id, name, category, type, quantity, image_url, updated_at
		FROM inventory
		ORDER BY name`

	queryUpdateQuantity = `
		UPDATE inventory SET
			quantity = $2,
			updated_at = now()
		WHERE name = $1`

	queryDeleteProduct = `
		DELETE FROM inventory WHERE id = $1`
)

// Ledger queries.
const (
	queryLoadLedgerKeys = `
		SELECT key FROM ledger_keys
		WHERE platform = $1
		ORDER BY applied_at, key`

	queryAppendLedgerKey = `
		INSERT INTO ledger_keys (key, platform, direction)
		VALUES (@key, @platform, @direction)
		ON CONFLICT (key) DO NOTHING`

	queryLedgerStats = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE direction = 'dec'),
			COUNT(*) FILTER (WHERE direction = 'inc')
		FROM ledger_keys`
)

// Tax queries.
const (
	queryInsertTaxEntry = `
		INSERT INTO tax_entries (order_id, date, amount, platform)
		VALUES (@order_id, @date, @amount, @platform)
		ON CONFLICT (order_id) DO NOTHING`
)

// Return queries.
const (
	queryInsertReturnEntry = `
		INSERT INTO return_entries (
			order_id, product, variation, quantity, date, status, platform
		) VALUES (
			@order_id, @product, @variation, @quantity, @date, @status, @platform
		)
		ON CONFLICT (order_id) DO NOTHING`

	queryListReturnsAll = `
		SELECT id, order_id, product, variation, quantity, date, status, platform, created_at
		FROM return_entries
		ORDER BY created_at DESC, order_id
		LIMIT $1 OFFSET $2`

	queryListReturnsByPlatform = `
		SELECT id, order_id, product, variation, quantity, date, status, platform, created_at
		FROM return_entries
		WHERE platform = $3
		ORDER BY created_at DESC, order_id
		LIMIT $1 OFFSET $2`

	queryCountReturnsAll = `
		SELECT COUNT(*) FROM return_entries`

	queryCountReturnsByPlatform = `
		SELECT COUNT(*) FROM return_entries WHERE platform = $1`
)

// Job run queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, status)
		VALUES ($1, 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at = now(),
			status = $2,
			error_text = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListJobRunsAll = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY started_at DESC
		LIMIT $1`
)
