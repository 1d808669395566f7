package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Accounts

CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username VARCHAR(255) UNIQUE NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS characters (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    level INTEGER NOT NULL DEFAULT 1,
    experience INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Reference data

CREATE TABLE IF NOT EXISTS currency_types (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(50) UNIQUE NOT NULL,
    description TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

INSERT INTO currency_types (name, description) VALUES
('gold', 'Common currency'),
('gems', 'Premium currency')
ON CONFLICT DO NOTHING;

-- Holdings

CREATE TABLE IF NOT EXISTS equipment (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    type VARCHAR(50) NOT NULL,
    character_id BIGINT NOT NULL REFERENCES characters(id) ON DELETE CASCADE,
    power INTEGER NOT NULL DEFAULT 0,
    slot VARCHAR(20) NOT NULL CHECK (slot IN ('head', 'chest', 'shoes', 'weapon')),
    equipped BOOLEAN NOT NULL DEFAULT FALSE,
    price NUMERIC(20, 2) NOT NULL DEFAULT 0,
    currency_type_id BIGINT NOT NULL REFERENCES currency_types(id) ON DELETE RESTRICT,
    quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (character_id, name)
);

-- The partial unique index is the backstop for slot exclusivity: the
-- arbiter's conflict scan cannot lock rows that do not exist yet, so two
-- transactions equipping into an empty slot both pass the scan. The second
-- write then fails here with a unique violation.
CREATE UNIQUE INDEX IF NOT EXISTS uniq_equipment_equipped_slot
    ON equipment (character_id, slot) WHERE equipped;

CREATE TABLE IF NOT EXISTS currency_balances (
    id BIGSERIAL PRIMARY KEY,
    character_id BIGINT NOT NULL REFERENCES characters(id) ON DELETE CASCADE,
    currency_type_id BIGINT NOT NULL REFERENCES currency_types(id) ON DELETE RESTRICT,
    balance NUMERIC(20, 2) NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (character_id, currency_type_id)
);

CREATE TABLE IF NOT EXISTS inventory (
    id BIGSERIAL PRIMARY KEY,
    character_id BIGINT NOT NULL REFERENCES characters(id) ON DELETE CASCADE,
    item_name VARCHAR(255) NOT NULL,
    item_type VARCHAR(50) NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Audit log

CREATE TABLE IF NOT EXISTS transactions (
    id BIGSERIAL PRIMARY KEY,
    transaction_type VARCHAR(50),
    amount NUMERIC(20, 2) NOT NULL,
    item_id BIGINT REFERENCES equipment(id) ON DELETE SET NULL,
    currency_type_id BIGINT NOT NULL REFERENCES currency_types(id) ON DELETE RESTRICT,
    character_from BIGINT REFERENCES characters(id) ON DELETE SET NULL,
    character_to BIGINT REFERENCES characters(id) ON DELETE SET NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_transactions_character_from ON transactions (character_from);
CREATE INDEX IF NOT EXISTS idx_transactions_character_to ON transactions (character_to);
`
