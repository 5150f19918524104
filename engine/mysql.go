// Copyright 2025 Zaya Barrini
//   This file is part of ZGDB.
//
//  ZGDB is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ZGDB is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with ZGDB.  If not, see <https://www.gnu.org/licenses/>.

package engine

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

type DBConf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Name     string `json:"name"`
	User     string `json:"user"`
	Password string `json:"password"`
	PoolSize int    `json:"poolSize"`
}

func (dbc *DBConf) ValidateAndDefaults() error {
	if dbc.Host == "" {
		return fmt.Errorf("missing database configuration: host")
	}
	if dbc.Name == "" {
		return fmt.Errorf("missing database configuration: name")
	}
	if dbc.User == "" {
		return fmt.Errorf("missing database configuration: user")
	}
	return nil
}

func (dbc *DBConf) Addr() string {
	if dbc.Port == 0 {
		return dbc.Host
	}
	return fmt.Sprintf("%s:%d", dbc.Host, dbc.Port)
}

func Open(conf *DBConf) (*sql.DB, error) {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Addr()
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	db, err := sql.Open("mysql", mconf.FormatDSN())
	if err != nil {
		return nil, err
	}
	if conf.PoolSize > 0 {
		db.SetMaxOpenConns(conf.PoolSize)
	}
	return db, nil
}
