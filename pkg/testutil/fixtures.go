package testutil

// LevelDBCMakeLists is trimmed from LevelDB's CMakeLists.txt and contains
// each line the patcher rewrites.
const LevelDBCMakeLists = `cmake_minimum_required(VERSION 3.9)
project(leveldb VERSION 1.23.0 LANGUAGES C CXX)

include(CheckLibraryExists)
check_library_exists(crc32c crc32c_value "" HAVE_CRC32C)
check_library_exists(snappy snappy_compress "" HAVE_SNAPPY)
check_library_exists(tcmalloc malloc "" HAVE_TCMALLOC)

add_library(leveldb "")
target_include_directories(leveldb
  PUBLIC
    $<BUILD_INTERFACE:${PROJECT_SOURCE_DIR}/include>
    $<INSTALL_INTERFACE:${CMAKE_INSTALL_INCLUDEDIR}>
)

if(HAVE_SNAPPY)
  target_link_libraries(leveldb snappy)
endif(HAVE_SNAPPY)
`

// LevelDBCMakeListsPatched is LevelDBCMakeLists patched with source dir
// /snappy/src and binary dir /snappy/bin on a non-Windows platform.
const LevelDBCMakeListsPatched = `cmake_minimum_required(VERSION 3.9)
project(leveldb VERSION 1.23.0 LANGUAGES C CXX)

include(CheckLibraryExists)
check_library_exists(crc32c crc32c_value "" HAVE_CRC32C)
# check_library_exists(snappy snappy_compress "" HAVE_SNAPPY)
set(HAVE_SNAPPY ON CACHE BOOL "")
check_library_exists(tcmalloc malloc "" HAVE_TCMALLOC)

add_library(leveldb "")
target_include_directories(leveldb
  PRIVATE
    /snappy/src
    /snappy/bin
  PUBLIC
    $<BUILD_INTERFACE:${PROJECT_SOURCE_DIR}/include>
    $<INSTALL_INTERFACE:${CMAKE_INSTALL_INCLUDEDIR}>
)

if(HAVE_SNAPPY)
  # target_link_libraries(leveldb snappy)
  target_link_libraries(leveldb /snappy/bin/libsnappy.a)
endif(HAVE_SNAPPY)
`
