package db

import "context"

// Schema is applied at startup. Statements are idempotent so repeated
// boots against the same database are safe.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'student',
    student_id TEXT,
    department TEXT,
    year INT,
    room_number TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS polls (
    id UUID PRIMARY KEY,
    question TEXT NOT NULL,
    total_votes INT NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'active',
    end_date TIMESTAMPTZ NOT NULL,
    category TEXT NOT NULL DEFAULT 'General',
    created_by UUID NOT NULL REFERENCES users(id),
    created_by_name TEXT NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_polls_status ON polls(status);
CREATE INDEX IF NOT EXISTS idx_polls_created_at ON polls(created_at DESC);

CREATE TABLE IF NOT EXISTS poll_options (
    poll_id UUID NOT NULL REFERENCES polls(id) ON DELETE CASCADE,
    idx INT NOT NULL,
    text TEXT NOT NULL,
    votes INT NOT NULL DEFAULT 0,
    PRIMARY KEY (poll_id, idx)
);

CREATE TABLE IF NOT EXISTS poll_voters (
    poll_id UUID NOT NULL REFERENCES polls(id) ON DELETE CASCADE,
    user_id UUID NOT NULL REFERENCES users(id),
    option_index INT NOT NULL,
    voted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (poll_id, user_id)
);

CREATE TABLE IF NOT EXISTS announcements (
    id UUID PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT 'General',
    author UUID NOT NULL REFERENCES users(id),
    author_name TEXT NOT NULL,
    priority TEXT NOT NULL DEFAULT 'medium',
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    expiry_date TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_announcements_created_at ON announcements(created_at DESC);

CREATE TABLE IF NOT EXISTS complaints (
    id UUID PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT 'Other',
    room TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    priority TEXT NOT NULL DEFAULT 'medium',
    submitted_by UUID NOT NULL REFERENCES users(id),
    submitted_by_name TEXT NOT NULL,
    assigned_to UUID REFERENCES users(id),
    resolved_at TIMESTAMPTZ,
    admin_notes TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_complaints_submitted_by ON complaints(submitted_by);

CREATE TABLE IF NOT EXISTS lost_found_items (
    id UUID PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    type TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT 'Other',
    location TEXT NOT NULL,
    contact_info TEXT NOT NULL,
    image_url TEXT,
    submitted_by UUID NOT NULL REFERENCES users(id),
    submitted_by_name TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'active',
    resolved_at TIMESTAMPTZ,
    expiry_date TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS timetable_entries (
    id UUID PRIMARY KEY,
    subject TEXT NOT NULL,
    instructor TEXT NOT NULL,
    room TEXT NOT NULL,
    day TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    department TEXT NOT NULL,
    year INT NOT NULL,
    semester INT NOT NULL,
    subject_code TEXT NOT NULL,
    credits INT NOT NULL DEFAULT 3,
    type TEXT NOT NULL DEFAULT 'lecture',
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_timetable_dept_year ON timetable_entries(department, year);

CREATE TABLE IF NOT EXISTS skills (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    avatar TEXT NOT NULL DEFAULT '',
    rating REAL NOT NULL DEFAULT 0,
    reviews INT NOT NULL DEFAULT 0,
    skills TEXT[] NOT NULL,
    category TEXT NOT NULL,
    bio TEXT NOT NULL,
    hourly_rate TEXT NOT NULL DEFAULT 'Free',
    location TEXT NOT NULL,
    availability TEXT[],
    sessions_completed INT NOT NULL DEFAULT 0,
    user_id UUID NOT NULL REFERENCES users(id),
    user_email TEXT NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tech_news (
    id UUID PRIMARY KEY,
    title TEXT NOT NULL,
    summary TEXT NOT NULL,
    content TEXT NOT NULL,
    source TEXT NOT NULL,
    url TEXT,
    category TEXT NOT NULL DEFAULT 'General',
    tags TEXT[],
    published_at TIMESTAMPTZ NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, schema)
	return err
}
