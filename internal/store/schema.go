package store

const journalSchema = `
CREATE SEQUENCE IF NOT EXISTS plays_id_seq START 1;

CREATE TABLE IF NOT EXISTS plays (
    id           BIGINT DEFAULT nextval('plays_id_seq') PRIMARY KEY,
    event        VARCHAR NOT NULL,
    melody       VARCHAR NOT NULL,
    project_dir  VARCHAR NOT NULL,
    session_id   VARCHAR,
    tool_name    VARCHAR,
    volume       DOUBLE NOT NULL,
    played_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_plays_ts     ON plays(played_at);
CREATE INDEX IF NOT EXISTS idx_plays_melody ON plays(melody);
CREATE INDEX IF NOT EXISTS idx_plays_event  ON plays(event);
`
