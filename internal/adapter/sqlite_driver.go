package adapter

import _ "modernc.org/sqlite"

const sqliteDriverName = "sqlite"
